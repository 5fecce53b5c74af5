package preview

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/cube"
)

// Run starts the preview and blocks until the user quits or ctx ends. The
// cube animator runs on its own goroutine and feeds frames to the program.
func Run(ctx context.Context, site string, p *content.Portfolio, fps int) error {
	prog := tea.NewProgram(New(site, p),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	animCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	animator := cube.NewAnimator(fps, func(frame int, r cube.Rotation) {
		prog.Send(frameMsg{frame: frame, rotation: r})
	})
	done := make(chan struct{})
	go func() {
		defer close(done)
		animator.Run(animCtx)
	}()

	_, err := prog.Run()
	cancel()
	<-done

	if err != nil && ctx.Err() == nil {
		return errors.Wrap(err, "preview failed")
	}
	return nil
}
