// Package win32 provides Windows display support through the user32 display
// settings API (EnumDisplayDevicesW, EnumDisplaySettingsW,
// ChangeDisplaySettingsExW). On other platforms the package compiles empty.
package win32
