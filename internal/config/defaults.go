package config

const (
	defaultOutputDir             = "outputs"
	defaultLogDir                = "~/.local/share/subcast/logs"
	defaultHostName              = "Héctor"
	defaultGuestName             = "Aura"
	defaultHostColor             = "#2EA8E6"
	defaultGuestColor            = "#FFD23F"
	defaultNarratorWindowSeconds = 5.0
	defaultCharsPerSecond        = 12.0
	defaultMinDuration           = 1.2
	defaultPauseStrong           = 0.35
	defaultPauseSoft             = 0.20
	defaultQuestionBoost         = 0.15
	defaultMaxSegmentChars       = 160
	defaultMaxLineChars          = 48
	defaultMaxLines              = 3
	defaultMinSplitChars         = 40
	defaultMinPartSeconds        = 0.6
	defaultFont                  = "Arial"
	defaultFontSize              = 64
	defaultMarginV               = 70
	defaultMarginLR              = 200
	defaultOutline               = 2.0
	defaultShadow                = 1.0
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Speakers: Speakers{
			HostName:              defaultHostName,
			GuestName:             defaultGuestName,
			HostColor:             defaultHostColor,
			GuestColor:            defaultGuestColor,
			UseColors:             true,
			NarratorWindowSeconds: defaultNarratorWindowSeconds,
		},
		Timing: Timing{
			CharsPerSecond: defaultCharsPerSecond,
			MinDuration:    defaultMinDuration,
			PauseStrong:    defaultPauseStrong,
			PauseSoft:      defaultPauseSoft,
			QuestionBoost:  defaultQuestionBoost,
		},
		Layout: Layout{
			MaxSegmentChars: defaultMaxSegmentChars,
			MaxLineChars:    defaultMaxLineChars,
			MaxLines:        defaultMaxLines,
			MinSplitChars:   defaultMinSplitChars,
			MinPartSeconds:  defaultMinPartSeconds,
		},
		Style: Style{
			Font:     defaultFont,
			FontSize: defaultFontSize,
			MarginV:  defaultMarginV,
			MarginLR: defaultMarginLR,
			Outline:  defaultOutline,
			Shadow:   defaultShadow,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
