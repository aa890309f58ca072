// Package led holds the display-mode side of the dispatch layer: the mode
// vocabulary, the Display collaborator interface, the timed automaton that
// switches between the activity-trail and static-colormap modes, and the
// effect state the simulator renders from.
package led
