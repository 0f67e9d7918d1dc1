package colors

// Default returns the default color scheme (purple accent)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset:  "default",
		Accent:  "#7D56F4",
		Subtle:  "#6C7086",
		Normal:  "#D0D0D0",
		Success: "#22C55E",
		Error:   "#EF4444",
	}
}
