// Package macro implements the built-in macro behaviors: typing the
// firmware version string and the "any key" pseudo-random key. Emission goes
// through an injected Output so the HID transport stays external.
package macro
