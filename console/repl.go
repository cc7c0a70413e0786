package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/flux-image/flux-image/common"
	"github.com/flux-image/flux-image/common/i18n"
	"github.com/flux-image/flux-image/common/logger"
	"github.com/flux-image/flux-image/relay/channel"
	relaymodel "github.com/flux-image/flux-image/relay/model"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/text/message"
)

// REPL reads prompts line by line and prints the generated image URL for each.
type REPL struct {
	Generator channel.ImageGenerator
	Printer   *message.Printer
	In        io.Reader
	Out       io.Writer
}

type readResult struct {
	line string
	err  error
}

// Run blocks until the user quits, input ends or ctx is cancelled.
// A panic inside the loop ends the session and is returned as an error.
func (r *REPL) Run(ctx context.Context) (err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.SysError(fmt.Sprintf("console loop panic: %v", p))
			err = errors.Errorf("%v", p)
		}
	}()

	quitWords := lo.Map(i18n.QuitWords(), func(word string, _ int) string {
		return strings.ToLower(word)
	})

	r.println(i18n.MsgConsoleBanner)
	r.println(i18n.MsgConsoleQuitHint)
	r.newline()

	lines := r.readLines(ctx)
	for {
		r.print(i18n.MsgConsolePrompt)
		var result readResult
		select {
		case <-ctx.Done():
			r.newline()
			r.newline()
			r.println(i18n.MsgFarewell)
			return nil
		case result = <-lines:
		}
		if result.err != nil {
			if errors.Is(result.err, io.EOF) {
				r.newline()
				r.println(i18n.MsgFarewell)
				return nil
			}
			return errors.Wrap(result.err, "read prompt")
		}

		prompt := strings.TrimSpace(result.line)
		if lo.Contains(quitWords, strings.ToLower(prompt)) {
			r.println(i18n.MsgFarewell)
			return nil
		}
		if prompt == "" {
			r.println(i18n.MsgPromptRequired)
			continue
		}

		r.generate(ctx, prompt)
		r.newline()
	}
}

func (r *REPL) generate(ctx context.Context, prompt string) {
	r.newline()
	r.println(i18n.MsgGenerating, prompt)
	imageUrl, err := r.Generator.Generate(ctx, &relaymodel.ImageRequest{
		Prompt: prompt,
		N:      1,
	})
	if err != nil {
		logger.Warnf(ctx, "console generation failed: %s", err.Error())
		r.println(i18n.MsgErrorDetail, err.Error())
		r.println(i18n.MsgGenerateRetry)
		return
	}
	r.newline()
	r.println(i18n.MsgImageReady)
	r.println(i18n.MsgImageURL, imageUrl)
	r.newline()
	r.println(i18n.MsgImageURLHint)
}

// readLines feeds lines to the loop so a blocking read never delays cancellation.
func (r *REPL) readLines(ctx context.Context) <-chan readResult {
	lines := make(chan readResult)
	common.CtxGo(ctx, func() {
		scanner := bufio.NewScanner(r.In)
		for scanner.Scan() {
			select {
			case lines <- readResult{line: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		select {
		case lines <- readResult{err: err}:
		case <-ctx.Done():
		}
	})
	return lines
}

func (r *REPL) print(key string, args ...any) {
	_, _ = r.Printer.Fprintf(r.Out, key, args...)
}

func (r *REPL) println(key string, args ...any) {
	r.print(key, args...)
	r.newline()
}

func (r *REPL) newline() {
	_, _ = io.WriteString(r.Out, "\n")
}
