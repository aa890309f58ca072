// Package runtime implements the cooperative scan-cycle loop that drives the
// dispatch layer.
//
// The runtime owns a handler list executed in registration order. Each cycle
// samples the millisecond clock once, delivers every key event of the cycle
// to every handler's OnKeyEvent, then runs every handler's AfterEachCycle.
// All of it is single-threaded and non-reentrant: a hook runs to completion
// before the next one starts, and component state is only ever touched from
// inside the component's own hooks.
//
// Timestamps are uint32 milliseconds and wrap at the integer width. Every
// time comparison goes through HasTimeExpired, which is wrap-safe.
package runtime
