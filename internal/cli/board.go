package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/azulboard/internal/api/request"
	"github.com/mcoot/azulboard/internal/api/response"
	"github.com/mcoot/azulboard/internal/model"
)

func boardPath(id string, suffix ...string) string {
	return "/api/v1/boards/" + url.PathEscape(id) + strings.Join(suffix, "")
}

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Board session commands",
	}

	cmd.AddCommand(newBoardCreateCmd())
	cmd.AddCommand(newBoardGetCmd())
	cmd.AddCommand(newBoardListCmd())
	cmd.AddCommand(newBoardDeleteCmd())

	return cmd
}

func newBoardCreateCmd() *cobra.Command {
	var player string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new empty board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Board

			if err := client.Post("/api/v1/boards", request.CreateBoardRequest{Player: player}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&player, "player", "p", "", "Player name shown with the board")
	return cmd
}

func newBoardGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Board

			if err := client.Get(boardPath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newBoardListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.BoardList

			if err := client.Get("/api/v1/boards", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newBoardDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(boardPath(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Board %s deleted", args[0]))
			return nil
		},
	}
}

func newPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put <id> <line> <tiles>",
		Short: "Put tiles on a pattern line (1-5) or the floor (0)",
		Example: `  azulboard put abc123 2 SBB
  azulboard put abc123 0 RR`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid line: %w", err)
			}

			// Validate locally so typos never reach the server
			if _, err := model.ParseTiles(args[2]); err != nil {
				return err
			}

			var result response.Board
			path := boardPath(args[0], "/lines/", strconv.Itoa(line))
			if err := client.Post(path, request.PutTilesRequest{Tiles: strings.ToUpper(args[2])}, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newFinishRoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finish-round <id>",
		Short: "Move full pattern lines to the wall and score the round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.FinishRoundResponse

			if err := client.Post(boardPath(args[0], "/finish-round"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newEndGameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end-game <id>",
		Short: "Check whether the board has reached the end of the game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Board

			if err := client.Post(boardPath(args[0], "/end-game"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			if cfg.Output == "json" {
				out.Print(map[string]bool{"end_game": result.EndGame})
			} else {
				out.PrintMessage(fmt.Sprintf("End game: %t", result.EndGame))
			}
			return nil
		},
	}
}

func newPatternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pattern",
		Short: "Print the wall color layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(response.PatternFromModel())
			return nil
		},
	}
}
