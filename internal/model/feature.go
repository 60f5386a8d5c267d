package model

// Built-in vocabulary used when no feature file overrides it.
const (
	DefaultFeaturePrefix = "ENABLE"
	DefaultGuardSuffix   = "_H"
	DefaultMaxPasses     = 10
)

// DefaultExtensions lists the file extensions processed by default.
var DefaultExtensions = []string{".c", ".h"}

// FeatureConfig is the static classification of feature flags together with
// the vocabulary used to recognise them.
type FeatureConfig struct {
	FeaturePrefix string   `yaml:"prefix"`
	GuardSuffix   string   `yaml:"guard_suffix"`
	Extensions    []string `yaml:"extensions"`
	MaxPasses     int      `yaml:"max_passes"`
	Enabled       []string `yaml:"enabled"`
	Disabled      []string `yaml:"disabled"`
}

// DefaultFeatureConfig returns the firmware build classification the tool was
// written for.
func DefaultFeatureConfig() FeatureConfig {
	return FeatureConfig{
		FeaturePrefix: DefaultFeaturePrefix,
		GuardSuffix:   DefaultGuardSuffix,
		Extensions:    append([]string(nil), DefaultExtensions...),
		MaxPasses:     DefaultMaxPasses,
		Enabled: []string{
			"ENABLE_UART", "ENABLE_USB", "ENABLE_VOX", "ENABLE_TX1750", "ENABLE_FLASHLIGHT",
			"ENABLE_SPECTRUM", "ENABLE_BIG_FREQ", "ENABLE_SMALL_BOLD", "ENABLE_CUSTOM_MENU_LAYOUT",
			"ENABLE_KEEP_MEM_NAME", "ENABLE_WIDE_RX", "ENABLE_NO_CODE_SCAN_TIMEOUT",
			"ENABLE_SQUELCH_MORE_SENSITIVE", "ENABLE_FASTER_CHANNEL_SCAN", "ENABLE_RSSI_BAR",
			"ENABLE_AUDIO_BAR", "ENABLE_COPY_CHAN_TO_VFO", "ENABLE_SCAN_RANGES",
			"ENABLE_FEAT_F4HWN", "ENABLE_FEAT_F4HWN_SPECTRUM", "ENABLE_FEAT_F4HWN_RX_TX_TIMER",
			"ENABLE_FEAT_F4HWN_SLEEP", "ENABLE_FEAT_F4HWN_RESUME_STATE", "ENABLE_FEAT_F4HWN_NARROWER",
			"ENABLE_FEAT_F4HWN_INV", "ENABLE_FEAT_F4HWN_CTR", "ENABLE_FEAT_F4HWN_CA",
			"ENABLE_NAVIG_LEFT_RIGHT", "ENABLE_FMRADIO", "ENABLE_AIRCOPY",
			"ENABLE_FEAT_F4HWN_SCREENSHOT", "ENABLE_FEAT_F4HWN_GAME", "ENABLE_FEAT_F4HWN_PMR",
			"ENABLE_FEAT_F4HWN_GMRS_FRS_MURS", "ENABLE_FEAT_F4HWN_RESCUE_OPS",
			"ENABLE_SWD", "ENABLE_ALARM", "ENABLED_AIRCOPY",
		},
		Disabled: []string{
			"ENABLE_NOAA", "ENABLE_VOICE", "ENABLE_PWRON_PASSWORD", "ENABLE_DTMF_CALLING",
			"ENABLE_TX_WHEN_AM", "ENABLE_F_CAL_MENU", "ENABLE_CTCSS_TAIL_PHASE_SHIFT",
			"ENABLE_BOOT_BEEPS", "ENABLE_SHOW_CHARGE_LEVEL", "ENABLE_REVERSE_BAT_SYMBOL",
			"ENABLE_AM_FIX", "ENABLE_REDUCE_LOW_MID_TX_POWER", "ENABLE_BYP_RAW_DEMODULATORS",
			"ENABLE_BLMIN_TMP_OFF", "ENABLE_REGA", "ENABLE_EXTRA_UART_CMD",
			"ENABLE_FEAT_F4HWN_CHARGING_C", "ENABLE_FEAT_F4HWN_VOL", "ENABLE_FEAT_F4HWN_RESET_CHANNEL",
			"ENABLE_FEAT_F4HWN_DEBUG", "ENABLE_AM_FIX_SHOW_DATA", "ENABLE_AGC_SHOW_DATA",
			"ENABLE_UART_RW_BK_REGS", "ENABLE_OVERLAY",
		},
	}
}
