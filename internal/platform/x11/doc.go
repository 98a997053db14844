// Package x11 provides display support for X11 sessions through the RandR
// extension. Devices are connected outputs, modes come from the output's
// mode list, and mode changes are applied with SetCrtcConfig.
package x11
