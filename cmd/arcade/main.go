// arcade is a terminal arcade with a side-scrolling shooter and a grid snake.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>          - Frame rate for continuous games (default: 60)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--db <path>           - Scores database (default: ~/.arcade/scores.db)
//	--user <name>         - Identity for score reporting
//	--report-url <url>    - Score endpoint base URL
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log file for local play (default: ~/.arcade/arcade.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/mini-arcade/internal/games/shooter"
	_ "github.com/vovakirdan/mini-arcade/internal/games/snake"
)

var (
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagUser      string
	flagReportURL string
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Mini Arcade - a shooter and a snake in your terminal",
	Long: `Mini Arcade runs two real-time games on a character canvas: a
side-scrolling shooter and a grid snake.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Final scores of identified players (--user, or the SSH user name when
serving) are sent to --report-url when it is set.

Examples:
  arcade list
  arcade play shooter
  arcade play snake --difficulty hard
  arcade menu --user ann --report-url https://scores.example.com/api
  arcade serve --ssh :2222
  arcade scores snake`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate for continuous games")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagUser, "user", "", "Player identity for score reporting (empty = anonymous)")
	pf.StringVar(&flagReportURL, "report-url", "", "Base URL of the score endpoint (empty = no reporting)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Log file for local play")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
