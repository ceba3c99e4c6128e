package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"termlaunch.dev/launcher/internal/folder"
)

// URL returns the address the GUI is served at
func (b *Bootstrapper) URL() string {
	return "http://" + b.options.ServerAddress
}

// Serve runs the Django development server from the virtual environment,
// opening the browser once the delay elapses. Cancelling ctx stops the
// server and is not an error.
func (b *Bootstrapper) Serve(ctx context.Context) (err error) {
	url := b.URL()
	b.emit(StageServer, StatusStarted, fmt.Sprintf("Starting Django server at %s, press Ctrl+C to stop it", url), nil)

	browserCtx, cancelBrowser := context.WithCancel(ctx)
	browserDone := make(chan struct{})
	go func() {
		defer close(browserDone)
		if b.options.OpenBrowser {
			b.openBrowser(browserCtx, url)
		}
	}()

	err = b.options.Runner.Run(ctx, Command{
		Name: b.PythonPath(),
		Args: []string{folder.ManageScript, "runserver", b.options.ServerAddress},
		Dir:  b.GUIPath(),
		Env: []string{
			"PATH=" + b.BinPath() + string(os.PathListSeparator) + os.Getenv("PATH"),
			"VIRTUAL_ENV=" + b.VenvPath(),
		},
	})
	cancelBrowser()
	<-browserDone

	if ctx.Err() != nil {
		b.emit(StageServer, StatusDone, "Server shut down", nil)
		return nil
	}
	if err != nil {
		err = fmt.Errorf("server failed: %w", err)
		b.emit(StageServer, StatusFailed, "Server failed", err)
		return
	}
	b.emit(StageServer, StatusDone, "Server exited", nil)
	return nil
}

func (b *Bootstrapper) openBrowser(ctx context.Context, url string) {
	timer := time.NewTimer(b.options.BrowserDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}
	if err := b.options.Browser(url); err != nil {
		b.emit(StageBrowser, StatusWarning, "Cannot open browser at "+url, err)
		return
	}
	b.emit(StageBrowser, StatusDone, "Opened browser at "+url, nil)
}
