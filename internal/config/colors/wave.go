package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset:  "wave",
		Accent:  "#957FB8", // oniViolet
		Subtle:  "#727169", // fujiGray
		Normal:  "#DCD7BA", // fujiWhite
		Success: "#98BB6C", // springGreen
		Error:   "#E82424", // samuraiRed
	}
}
