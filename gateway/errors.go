package gateway

import "github.com/skufirovan/command-line-emulator/common/api"

var ErrSessionClosed = api.NewBusinessError(101, "Session closed")
