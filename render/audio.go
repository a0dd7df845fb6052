// Package render draws the arena sandbox and plays its sounds. Simulation
// packages never import it, so the server stays headless.
package render

import (
	"encoding/binary"
	"math"
	"math/rand"
	"sync"

	"github.com/automoto/xv-arena/components"
	cfg "github.com/automoto/xv-arena/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	toneCache          = map[cfg.SoundID][]byte{}
	toneMu             sync.Mutex
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX synthesizes every configured tone up front.
func PreloadAllSFX() {
	initGlobalAudio()
	for id := range cfg.Sound.Tones {
		toneBytes(id)
	}
}

// InvalidateTones drops synthesized tones so edited configs take effect.
func InvalidateTones() {
	toneMu.Lock()
	defer toneMu.Unlock()
	toneCache = map[cfg.SoundID][]byte{}
}

// UpdateAudio plays the sounds the simulation queued last tick. It must run
// before systems.UpdateEffects.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Effects.First(e.World)
	if !ok {
		return
	}
	fx := components.Effects.Get(entry)
	for _, req := range fx.PendingSFX {
		playSFX(req.Sound)
	}
	fx.PendingSFX = fx.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 || soundID == cfg.SoundNone {
		return
	}
	pcm := toneBytes(soundID)
	if len(pcm) == 0 {
		return
	}
	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = max(0, min(1, volume))
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

func toneBytes(id cfg.SoundID) []byte {
	toneMu.Lock()
	defer toneMu.Unlock()
	if pcm, ok := toneCache[id]; ok {
		return pcm
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil
	}
	pcm := synthesize(tone, cfg.Audio.SampleRate, rand.New(rand.NewSource(int64(id))))
	toneCache[id] = pcm
	return pcm
}

// synthesize renders a tone as 16-bit little-endian stereo PCM, the format
// ebiten's audio players expect.
func synthesize(t cfg.ToneConfig, sampleRate int, noise *rand.Rand) []byte {
	n := int(t.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		at := float64(i) / float64(sampleRate)
		freq := math.Max(20, t.Frequency+t.Sweep*at)
		phase += 2 * math.Pi * freq / float64(sampleRate)

		wave := math.Sin(phase)
		if wave >= 0 {
			wave = 0.5*wave + 0.5
		} else {
			wave = 0.5*wave - 0.5
		}
		sample := (1-t.Noise)*wave + t.Noise*(noise.Float64()*2-1)

		envelope := 1 - at/t.Duration
		v := int16(math.Max(-1, math.Min(1, sample*envelope*t.Volume)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
