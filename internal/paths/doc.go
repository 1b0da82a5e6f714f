// Package paths resolves where oaslint keeps its own files.
//
// Locations follow the XDG Base Directory Specification through
// github.com/adrg/xdg. OASLINT_CONFIG_DIR overrides the configuration
// directory, which tests and CI jobs use to isolate themselves from the
// user's settings.
//
//	paths.ConfigDir()  // ~/.config/oaslint
//	paths.ConfigFile() // ~/.config/oaslint/config.yaml
package paths
