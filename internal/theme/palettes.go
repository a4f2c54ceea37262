package theme

func lightPalette() Palette {
	return Palette{
		ID:   Light,
		Name: "Light Mode",

		Primary:   "#8B4513",
		Secondary: "#A0826D",
		Accent:    "#CD853F",

		Background:    "#FAF7F2",
		Surface:       "#F5F1EB",
		Text:          "#2F2F2F",
		TextSecondary: "#6B5B47",
		Border:        "#E8E0D6",

		Success: "#6B8E23",
		Warning: "#DAA520",
		Error:   "#B22222",
		Info:    "#4682B4",
	}
}

func darkPalette() Palette {
	return Palette{
		ID:   Dark,
		Name: "Dark Mode",

		Primary:   "#D2B48C",
		Secondary: "#A0826D",
		Accent:    "#DEB887",

		Background:    "#1C1917",
		Surface:       "#292524",
		Text:          "#F5F1EB",
		TextSecondary: "#A8A29E",
		Border:        "#44403C",

		Success: "#84CC16",
		Warning: "#EAB308",
		Error:   "#EF4444",
		Info:    "#06B6D4",
	}
}

// browniePalette is the high-contrast terminal theme
func browniePalette() Palette {
	return Palette{
		ID:   Brownie,
		Name: "Brownie Mode",

		Primary:   "#00FF00",
		Secondary: "#FFFF00",
		Accent:    "#FF00FF",

		Background:    "#000000",
		Surface:       "#1A1A1A",
		Text:          "#00FF00",
		TextSecondary: "#CCCCCC",
		Border:        "#00FF00",

		Success: "#00FF00",
		Warning: "#FFFF00",
		Error:   "#FF0000",
		Info:    "#00FFFF",
	}
}
