// Package gateway is the HTTP front-end of a shell session. Posted command lines are forwarded to the
// command loop queue and answered once the loop has processed them.
package gateway

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/skufirovan/command-line-emulator/common/api"
	"github.com/skufirovan/command-line-emulator/common/metrics"
	"github.com/skufirovan/command-line-emulator/shell"
)

// Server exposes one shell session over HTTP.
type Server struct {
	name  string
	shell *shell.Shell
	loop  *shell.Loop
}

// NewServer creates a front-end for the session of shell driven by loop.
func NewServer(computerName string, sh *shell.Shell, loop *shell.Loop) *Server {
	return &Server{
		name:  computerName,
		shell: sh,
		loop:  loop,
	}
}

// Serve serves the API on endpoint until ctx is done or the session ends.
func (server *Server) Serve(ctx context.Context, endpoint string, option ...api.RouterOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-server.loop.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	return api.Serve(ctx, endpoint, server.Routes, option...)
}

// Routes registers the API routes.
func (server *Server) Routes(router *gin.Engine) {
	shellApi := router.Group("/shell")
	shellApi.POST("/command", api.Wrap(server.execute))
	shellApi.GET("/status", api.Wrap(server.status))

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}

func (server *Server) execute(c *gin.Context) (interface{}, error) {
	var input struct {
		Command string `form:"command" json:"command"`
	}

	if err := c.ShouldBind(&input); err != nil {
		return nil, err
	}

	result, err := server.loop.Call(c.Request.Context(), input.Command)
	if errors.Is(err, shell.ErrLoopStopped) {
		return nil, ErrSessionClosed
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (server *Server) status(c *gin.Context) (interface{}, error) {
	return map[string]interface{}{
		"computerName":     server.name,
		"prompt":           server.name + "@shell:~$ ",
		"currentDirectory": server.shell.CurrentDirectory(),
		"entries":          server.shell.Index().Len(),
		"stopped":          server.loop.Stopped(),
	}, nil
}
