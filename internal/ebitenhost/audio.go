package ebitenhost

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"sonoviz/internal/cue"
)

// cuePlayer plays the interaction clicks. A nil player is silent.
type cuePlayer struct {
	clickPlayer  *audio.Player
	togglePlayer *audio.Player
	logger       *log.Logger
}

func newCuePlayer(clickWAV string, logger *log.Logger) *cuePlayer {
	set, err := cue.NewSet(clickWAV)
	if err != nil {
		logger.Printf("Click sample unavailable, using synthesized click: %v", err)
	}
	ctx := audio.NewContext(cue.SampleRate)
	return &cuePlayer{
		clickPlayer:  ctx.NewPlayerFromBytes(set.Param),
		togglePlayer: ctx.NewPlayerFromBytes(set.Toggle),
		logger:       logger,
	}
}

func (p *cuePlayer) param() {
	if p == nil {
		return
	}
	p.play(p.clickPlayer)
}

func (p *cuePlayer) toggle() {
	if p == nil {
		return
	}
	p.play(p.togglePlayer)
}

func (p *cuePlayer) play(player *audio.Player) {
	if err := player.Rewind(); err != nil {
		p.logger.Printf("Audio rewind failed: %v", err)
		return
	}
	player.Play()
}
