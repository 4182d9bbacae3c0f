// Package options defines the static catalog of ryzenadj tunables: every
// numeric parameter the control surface knows about, plus the two boolean
// mode flags. The catalog is fixed at compile time and never mutated.
package options

// Categories used to group numeric options for presentation.
const (
	CategoryPower    = "Power"
	CategoryCurrent  = "Current"
	CategoryClocks   = "Clocks"
	CategoryAdvanced = "Advanced"
)

// OptionSpec describes one numeric ryzenadj parameter. Minimum, Maximum and
// Default are in the raw hardware units ryzenadj expects on the command line;
// UIScale relates the raw unit to the unit a front-end displays (for example
// mW raw vs W displayed, UIScale 1000).
type OptionSpec struct {
	Key      string
	CLI      string
	Label    string
	Category string
	Minimum  int
	Maximum  int
	Default  int
	Tooltip  string
	UIScale  int
	UISuffix string
}

// BooleanOption describes a bare mode flag with no value.
type BooleanOption struct {
	Key      string
	CLI      string
	Label    string
	Category string
	Tooltip  string
}

// EnabledKey returns the companion value-map key that records whether the
// numeric option is active.
func (s OptionSpec) EnabledKey() string {
	return s.Key + "_enabled"
}

// NumericOptions is the ordered catalog of numeric tunables. Command lines
// and default value maps are always produced in this order.
var NumericOptions = []OptionSpec{
	{Key: "stapm_limit", CLI: "--stapm-limit", Label: "STAPM Limit", Category: CategoryPower, Minimum: 0, Maximum: 200000, Default: 25000, Tooltip: "Sustained platform power limit in W.", UIScale: 1000, UISuffix: " W"},
	{Key: "fast_limit", CLI: "--fast-limit", Label: "PPT Fast Limit", Category: CategoryPower, Minimum: 0, Maximum: 200000, Default: 35000, Tooltip: "Short boost power limit in W.", UIScale: 1000, UISuffix: " W"},
	{Key: "slow_limit", CLI: "--slow-limit", Label: "PPT Slow Limit", Category: CategoryPower, Minimum: 0, Maximum: 200000, Default: 30000, Tooltip: "Long-duration package power limit in W.", UIScale: 1000, UISuffix: " W"},
	{Key: "slow_time", CLI: "--slow-time", Label: "Slow Time", Category: CategoryPower, Minimum: 0, Maximum: 512, Default: 64, Tooltip: "Time window for slow limit.", UIScale: 1},
	{Key: "stapm_time", CLI: "--stapm-time", Label: "STAPM Time", Category: CategoryPower, Minimum: 0, Maximum: 512, Default: 64, Tooltip: "Time window for STAPM behavior.", UIScale: 1},
	{Key: "tctl_temp", CLI: "--tctl-temp", Label: "Tctl Temp", Category: CategoryPower, Minimum: 0, Maximum: 105, Default: 90, Tooltip: "Thermal control target temperature in C.", UIScale: 1},
	{Key: "apu_slow_limit", CLI: "--apu-slow-limit", Label: "APU Slow Limit", Category: CategoryPower, Minimum: 0, Maximum: 200000, Default: 30000, Tooltip: "APU-specific slow power limit in W.", UIScale: 1000, UISuffix: " W"},
	{Key: "skin_temp_limit", CLI: "--skin-temp-limit", Label: "Skin Temp Limit", Category: CategoryPower, Minimum: 0, Maximum: 100, Default: 60, Tooltip: "Skin temperature control threshold.", UIScale: 1},
	{Key: "apu_skin_temp", CLI: "--apu-skin-temp", Label: "APU Skin Temp", Category: CategoryPower, Minimum: 0, Maximum: 100, Default: 55, Tooltip: "APU skin temperature target.", UIScale: 1},
	{Key: "dgpu_skin_temp", CLI: "--dgpu-skin-temp", Label: "dGPU Skin Temp", Category: CategoryPower, Minimum: 0, Maximum: 100, Default: 60, Tooltip: "dGPU skin temperature target.", UIScale: 1},
	{Key: "vrm_current", CLI: "--vrm-current", Label: "VRM Current", Category: CategoryCurrent, Minimum: 0, Maximum: 400, Default: 100, Tooltip: "CPU VRM current limit in A.", UIScale: 1},
	{Key: "vrmsoc_current", CLI: "--vrmsoc-current", Label: "VRMSoC Current", Category: CategoryCurrent, Minimum: 0, Maximum: 400, Default: 80, Tooltip: "SoC VRM current limit in A.", UIScale: 1},
	{Key: "vrmmax_current", CLI: "--vrmmax-current", Label: "VRM Max Current", Category: CategoryCurrent, Minimum: 0, Maximum: 500, Default: 130, Tooltip: "Maximum CPU VRM peak current in A.", UIScale: 1},
	{Key: "vrmsocmax_current", CLI: "--vrmsocmax-current", Label: "VRMSoC Max Current", Category: CategoryCurrent, Minimum: 0, Maximum: 500, Default: 110, Tooltip: "Maximum SoC VRM peak current in A.", UIScale: 1},
	{Key: "psi0_current", CLI: "--psi0-current", Label: "PSI0 Current", Category: CategoryCurrent, Minimum: 0, Maximum: 500, Default: 80, Tooltip: "PSI0 current threshold for CPU rails.", UIScale: 1},
	{Key: "psi0soc_current", CLI: "--psi0soc-current", Label: "PSI0SoC Current", Category: CategoryCurrent, Minimum: 0, Maximum: 500, Default: 60, Tooltip: "PSI0 current threshold for SoC rails.", UIScale: 1},
	{Key: "max_socclk_frequency", CLI: "--max-socclk-frequency", Label: "Max SoC Clock", Category: CategoryClocks, Minimum: 0, Maximum: 4000, Default: 1800, Tooltip: "Maximum SoC clock frequency in MHz.", UIScale: 1},
	{Key: "min_socclk_frequency", CLI: "--min-socclk-frequency", Label: "Min SoC Clock", Category: CategoryClocks, Minimum: 0, Maximum: 4000, Default: 400, Tooltip: "Minimum SoC clock frequency in MHz.", UIScale: 1},
	{Key: "max_fclk_frequency", CLI: "--max-fclk-frequency", Label: "Max FCLK", Category: CategoryClocks, Minimum: 0, Maximum: 4000, Default: 1800, Tooltip: "Maximum fabric clock in MHz.", UIScale: 1},
	{Key: "min_fclk_frequency", CLI: "--min-fclk-frequency", Label: "Min FCLK", Category: CategoryClocks, Minimum: 0, Maximum: 4000, Default: 400, Tooltip: "Minimum fabric clock in MHz.", UIScale: 1},
	{Key: "max_vcn", CLI: "--max-vcn", Label: "Max VCN", Category: CategoryClocks, Minimum: 0, Maximum: 4000, Default: 1200, Tooltip: "Maximum VCN clock in MHz.", UIScale: 1},
	{Key: "min_vcn", CLI: "--min-vcn", Label: "Min VCN", Category: CategoryClocks, Minimum: 0, Maximum: 4000, Default: 300, Tooltip: "Minimum VCN clock in MHz.", UIScale: 1},
	{Key: "max_lclk", CLI: "--max-lclk", Label: "Max LCLK", Category: CategoryClocks, Minimum: 0, Maximum: 4000, Default: 1200, Tooltip: "Maximum LCLK in MHz.", UIScale: 1},
	{Key: "min_lclk", CLI: "--min-lclk", Label: "Min LCLK", Category: CategoryClocks, Minimum: 0, Maximum: 4000, Default: 300, Tooltip: "Minimum LCLK in MHz.", UIScale: 1},
	{Key: "max_gfxclk", CLI: "--max-gfxclk", Label: "Max GFX Clock", Category: CategoryClocks, Minimum: 0, Maximum: 4000, Default: 2200, Tooltip: "Maximum graphics clock in MHz.", UIScale: 1},
	{Key: "min_gfxclk", CLI: "--min-gfxclk", Label: "Min GFX Clock", Category: CategoryClocks, Minimum: 0, Maximum: 4000, Default: 400, Tooltip: "Minimum graphics clock in MHz.", UIScale: 1},
	{Key: "prochot_deassertion_ramp", CLI: "--prochot-deassertion-ramp", Label: "Prochot Deassertion Ramp", Category: CategoryAdvanced, Minimum: 0, Maximum: 255, Default: 50, Tooltip: "Ramp behavior after PROCHOT release.", UIScale: 1},
}

// BooleanOptions is the ordered catalog of bare mode flags. The two flags are
// mutually exclusive as far as ryzenadj is concerned, but that is left to the
// interactive layer and to ryzenadj itself; nothing here enforces it.
var BooleanOptions = []BooleanOption{
	{Key: "power_saving", CLI: "--power-saving", Label: "Power Saving", Category: CategoryAdvanced, Tooltip: "Enable ryzenadj power-saving mode."},
	{Key: "max_performance", CLI: "--max-performance", Label: "Max Performance", Category: CategoryAdvanced, Tooltip: "Enable ryzenadj max-performance mode."},
}

// DefaultValues returns a complete value map: every numeric option at its
// catalog default with its enabled flag false, every boolean option false.
// Each call returns a distinct map.
func DefaultValues() map[string]any {
	values := make(map[string]any, 2*len(NumericOptions)+len(BooleanOptions))
	for _, spec := range NumericOptions {
		values[spec.Key] = spec.Default
		values[spec.EnabledKey()] = false
	}
	for _, opt := range BooleanOptions {
		values[opt.Key] = false
	}
	return values
}

// ByCategory groups the numeric options by category, preserving catalog
// order within each group.
func ByCategory() map[string][]OptionSpec {
	categories := map[string][]OptionSpec{
		CategoryPower:    {},
		CategoryCurrent:  {},
		CategoryClocks:   {},
		CategoryAdvanced: {},
	}
	for _, spec := range NumericOptions {
		categories[spec.Category] = append(categories[spec.Category], spec)
	}
	return categories
}
