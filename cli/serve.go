/*
File    : apscript/cli/serve.go
Package : cli
*/
package cli

import (
	"net"
	"os"

	"github.com/apscript-lang/apscript/replpkg"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// serveCmd implements `apscript serve <port>`: one REPL session per TCP
// connection, grounded on the teacher's main/main.go startServer/
// handleClient pair. Each connection gets a uuid session id logged for
// operator traceability. No step budget is applied to these sessions:
// neither --max-steps nor the config file's step_budget reaches them.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve <port>",
		Short: "Run a REPL server, one session per TCP connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port := args[0]
			listener, err := net.Listen("tcp", ":"+port)
			if err != nil {
				redColor.Fprintf(os.Stderr, "failed to listen on :%s: %v\n", port, err)
				os.Exit(1)
			}
			defer listener.Close()
			cyanColor.Fprintf(os.Stdout, "apscript serve listening on :%s\n", port)

			for {
				conn, err := listener.Accept()
				if err != nil {
					redColor.Fprintf(os.Stderr, "accept failed: %v\n", err)
					continue
				}
				go handleClient(conn)
			}
		},
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	sessionID := uuid.New().String()
	cyanColor.Fprintf(os.Stdout, "session %s connected from %s\n", sessionID, conn.RemoteAddr())

	r := replpkg.NewRepl(banner, version.Short(), author, line, license, prompt)
	r.Start(conn)

	cyanColor.Fprintf(os.Stdout, "session %s disconnected\n", sessionID)
}
