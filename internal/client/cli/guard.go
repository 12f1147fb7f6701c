package cli

import "context"

// command is a REPL action. args are the words typed after the command name.
type command func(ctx context.Context, args []string) error

// authState is the part of the session the guard looks at.
type authState interface {
	IsAuthenticated() bool
	Loading() bool
}

// requireAuth runs cmd when the session is authenticated or still being
// restored. Otherwise it runs login instead.
func requireAuth(s authState, login, cmd command) command {
	return func(ctx context.Context, args []string) error {
		if !s.IsAuthenticated() && !s.Loading() {
			return login(ctx, nil)
		}
		return cmd(ctx, args)
	}
}
