package shell

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/skufirovan/command-line-emulator/common"
	"github.com/skufirovan/command-line-emulator/common/metrics"
)

const (
	DefaultPollInterval = time.Second
	DefaultQueueSize    = 64
)

var ErrLoopStopped = errors.New("command loop stopped")

type LoopOption struct {
	PollInterval time.Duration
	QueueSize    int
	Logger       *logrus.Logger
}

type request struct {
	line  string
	reply chan Result
}

// Loop feeds queued command lines to the shell one at a time on a single consumer goroutine.
type Loop struct {
	shell        *Shell
	output       Output
	queue        chan request
	pollInterval time.Duration
	logger       *logrus.Logger

	stopped     atomic.Bool // no more commands accepted or processed
	inputClosed atomic.Bool // no more commands accepted, queued ones still processed

	once sync.Once
	done chan struct{}
}

// NewLoop creates a loop delivering results of shell to output.
func NewLoop(shell *Shell, output Output, option ...LoopOption) *Loop {
	var opt LoopOption
	if len(option) > 0 {
		opt = option[0]
	}

	if opt.PollInterval <= 0 {
		opt.PollInterval = DefaultPollInterval
	}

	if opt.QueueSize <= 0 {
		opt.QueueSize = DefaultQueueSize
	}

	logger := common.NewLogger()
	if opt.Logger != nil {
		logger = common.NewLogger(common.LogOption{Logger: opt.Logger})
	}

	return &Loop{
		shell:        shell,
		output:       output,
		queue:        make(chan request, opt.QueueSize),
		pollInterval: opt.PollInterval,
		logger:       logger,
		done:         make(chan struct{}),
	}
}

// Submit queues a command line without waiting for its result.
func (loop *Loop) Submit(line string) error {
	return loop.enqueue(request{line: line})
}

// Call queues a command line and waits until it has been processed.
func (loop *Loop) Call(ctx context.Context, line string) (Result, error) {
	reply := make(chan Result, 1)
	if err := loop.enqueue(request{line, reply}); err != nil {
		return Result{}, err
	}

	select {
	case result := <-reply:
		return result, nil
	case <-loop.done:
		// the consumer replies before it finishes
		select {
		case result := <-reply:
			return result, nil
		default:
			return Result{}, ErrLoopStopped
		}
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

func (loop *Loop) enqueue(req request) error {
	if loop.stopped.Load() || loop.inputClosed.Load() {
		return ErrLoopStopped
	}

	select {
	case loop.queue <- req:
		metrics.SetQueueDepth(len(loop.queue))
		return nil
	case <-loop.done:
		return ErrLoopStopped
	}
}

// Stop asks the consumer to terminate. It is observed within one poll interval; queued commands are
// dropped.
func (loop *Loop) Stop() {
	loop.stopped.Store(true)
}

// CloseInput rejects further commands and lets the consumer terminate once the queue is drained.
func (loop *Loop) CloseInput() {
	loop.inputClosed.Store(true)
}

// Stopped reports whether the loop accepts no more commands.
func (loop *Loop) Stopped() bool {
	return loop.stopped.Load() || loop.inputClosed.Load()
}

// Done is closed when the consumer has terminated.
func (loop *Loop) Done() <-chan struct{} {
	return loop.done
}

// Run consumes the queue until the exit command, Stop, CloseInput with an empty queue, or ctx is done.
// When the queue is empty it wakes up once per poll interval to observe shutdown requests.
func (loop *Loop) Run(ctx context.Context) error {
	defer loop.finish()

	loop.logger.Debug("Command loop started")

	ticker := time.NewTicker(loop.pollInterval)
	defer ticker.Stop()

	for {
		if loop.stopped.Load() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-loop.queue:
			metrics.SetQueueDepth(len(loop.queue))
			if loop.handle(ctx, req) {
				return nil
			}
		case <-ticker.C:
			if loop.inputClosed.Load() && len(loop.queue) == 0 {
				return nil
			}
		}
	}
}

// handle processes one request and reports whether the session has ended.
func (loop *Loop) handle(ctx context.Context, req request) bool {
	if IsExit(req.line) {
		loop.stopped.Store(true)
		loop.deliver(req, Result{
			Command:          req.line,
			Output:           loop.shell.Exit(req.line),
			CurrentDirectory: loop.shell.CurrentDirectory(),
			Exit:             true,
		})
		loop.logger.Info("Exit requested")
		return true
	}

	output := loop.shell.Execute(ctx, req.line)
	loop.deliver(req, Result{
		Command:          req.line,
		Output:           output,
		CurrentDirectory: loop.shell.CurrentDirectory(),
	})

	return false
}

func (loop *Loop) deliver(req request, result Result) {
	loop.output.Print(result)
	if req.reply != nil {
		req.reply <- result
	}
}

func (loop *Loop) finish() {
	loop.once.Do(func() {
		loop.stopped.Store(true)
		close(loop.done)
		loop.output.Close()
		loop.logger.Debug("Command loop terminated")
	})
}
