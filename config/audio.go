package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShot
	SoundPain
	SoundDeath
	SoundBossDeath
	SoundPickup
	SoundPlayerHurt
)

// EffectID represents a logical visual effect
type EffectID int

const (
	EffectNone EffectID = iota
	EffectMuzzleFlash
	EffectShellEject
	EffectImpact
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int     `yaml:"sample_rate"`
	DefaultSFXVol float64 `yaml:"default_sfx_vol"`
}

// ToneConfig describes a synthesized sound: a decaying square/sine blend.
type ToneConfig struct {
	Frequency float64 `yaml:"frequency"` // Hz
	Sweep     float64 `yaml:"sweep"`     // Hz per second
	Duration  float64 `yaml:"duration"`  // seconds
	Volume    float64 `yaml:"volume"`
	Noise     float64 `yaml:"noise"` // 0..1 share of white noise
}

// SoundConfig maps sound IDs to their synthesized tones
type SoundConfig struct {
	Tones map[SoundID]ToneConfig `yaml:"tones"`
}

// EffectsConfig controls how long spawned effects stay visible.
type EffectsConfig struct {
	Lifetimes map[EffectID]float64 `yaml:"lifetimes"` // real seconds
}

var (
	Audio   AudioConfig
	Sound   SoundConfig
	Effects EffectsConfig
)

func defaultAudio() (AudioConfig, SoundConfig) {
	return AudioConfig{
			SampleRate:    44100,
			DefaultSFXVol: 0.6,
		}, SoundConfig{
			Tones: map[SoundID]ToneConfig{
				SoundShot:       {Frequency: 180, Sweep: -400, Duration: 0.12, Volume: 0.5, Noise: 0.7},
				SoundPain:       {Frequency: 320, Sweep: -200, Duration: 0.15, Volume: 0.4, Noise: 0.2},
				SoundDeath:      {Frequency: 220, Sweep: -300, Duration: 0.4, Volume: 0.5, Noise: 0.3},
				SoundBossDeath:  {Frequency: 90, Sweep: -60, Duration: 1.5, Volume: 0.7, Noise: 0.4},
				SoundPickup:     {Frequency: 660, Sweep: 900, Duration: 0.1, Volume: 0.4},
				SoundPlayerHurt: {Frequency: 140, Sweep: -100, Duration: 0.2, Volume: 0.5, Noise: 0.5},
			},
		}
}

func defaultEffects() EffectsConfig {
	return EffectsConfig{
		Lifetimes: map[EffectID]float64{
			EffectMuzzleFlash: 0.08,
			EffectShellEject:  0.4,
			EffectImpact:      0.25,
		},
	}
}
