package tui

// BuildInfo holds build-time metadata for display in the banner.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Subtitle returns the second banner line.
func (b BuildInfo) Subtitle() string {
	if b.Version == "" {
		return "overwrite-mode markdown line editor"
	}
	return "overwrite-mode markdown line editor · " + b.Version
}
