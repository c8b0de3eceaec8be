// Command mcstatus is the reference CLI from spec.md §6: dial a
// Minecraft server, run the Status handshake, print its MOTD/player
// count, then round-trip a Ping and print the RTT. Exit code 0 on
// success, non-zero on any failure — the teacher has no cmd/ of its
// own, so the CLI shape (github.com/urfave/cli/v2) is grounded on
// kryptco-kr's kr command (kr/kr.go), the one example repo in the pack
// that is itself a CLI tool.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"mcwire/internal/statusping"
	_ "mcwire/versions/v47"
	_ "mcwire/versions/v765"
)

func main() {
	app := &cli.App{
		Name:      "mcstatus",
		Usage:     "query a Minecraft server's Status response and ping RTT",
		ArgsUsage: "<host:port>",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "protocol", Value: 765, Usage: "protocol version to announce in the handshake"},
			&cli.DurationFlag{Name: "timeout", Value: 5 * time.Second, Usage: "dial and round-trip timeout"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "mcstatus:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	addr := c.Args().Get(0)
	if addr == "" {
		return fmt.Errorf("usage: mcstatus <host:port>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	result, err := statusping.Poll(ctx, addr, int32(c.Int64("protocol")), c.Duration("timeout"))
	if err != nil {
		return err
	}

	fmt.Printf("%s  (%d/%d players, protocol %d %q)\n",
		result.MOTD, result.PlayersOnline, result.PlayersMax, result.VersionProtocol, result.VersionName)
	fmt.Printf("rtt: %s\n", result.RTT)
	return nil
}
