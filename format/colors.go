package format

// ThemeColors is the palette of the UI theme.
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Success   string `yaml:"success"`
	Info      string `yaml:"info"`
	Warning   string `yaml:"warning"`
	Danger    string `yaml:"danger"`
	Light     string `yaml:"light"`
	Dark      string `yaml:"dark"`
}

// DefaultThemeColors returns the default theme palette.
func DefaultThemeColors() ThemeColors {
	return ThemeColors{
		Primary:   "#7367F0",
		Secondary: "#82868B",
		Success:   "#28C76F",
		Info:      "#00CFE8",
		Warning:   "#FF9F43",
		Danger:    "#EA5455",
		Light:     "#F6F6F6",
		Dark:      "#4B4B4B",
	}
}

// Values returns the palette colors in the declaration order.
func (c ThemeColors) Values() []string {
	return []string{c.Primary, c.Secondary, c.Success, c.Info, c.Warning, c.Danger, c.Light, c.Dark}
}

var fixedChartColors = []string{
	"#6610f2", "#20c997", "#000000", "#FF0000", "#800000", "#FFFF00", "#808000", "#00FF00",
	"#008000", "#00FFFF", "#008080", "#0000FF", "#000080", "#FF00FF", "#800080",
}

// ChartColors returns the theme colors followed by the fixed chart colors.
func ChartColors(theme ThemeColors) []string {
	return append(theme.Values(), fixedChartColors...)
}
