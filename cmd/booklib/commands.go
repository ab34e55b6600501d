package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"booklibrary/internal/book"
	"booklibrary/internal/library"
	"booklibrary/internal/logger"
	"booklibrary/internal/seed"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	seedFile string
	sample   bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "booklib",
		Short:         "Browse a personal book collection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Setup(opts.logLevel, "console")
		},
	}
	root.PersistentFlags().StringVar(&opts.seedFile, "seed", "", "YAML seed file to load")
	root.PersistentFlags().BoolVar(&opts.sample, "sample", true, "include the built-in sample books")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")

	root.AddCommand(newListCmd(opts), newStatsCmd(opts))
	return root
}

func (o *rootOptions) library() (*library.Library, error) {
	return seed.Build(seed.Options{Sample: o.sample, File: o.seedFile})
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var query, filter, sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books, optionally searched, filtered and sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := opts.library()
			if err != nil {
				return err
			}

			var books []book.Book
			if sortBy != "" {
				criterion, err := library.ParseSortCriterion(sortBy)
				if err != nil {
					return err
				}
				books = lib.SortedBy(criterion)
			} else {
				books = lib.Books()
			}

			keep, err := statusFilter(filter)
			if err != nil {
				return err
			}
			out := books[:0]
			for _, b := range books {
				if keep(b) && b.Matches(query) {
					out = append(out, b)
				}
			}
			return printBooks(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive title or author search")
	cmd.Flags().StringVar(&filter, "filter", "", "read or unread")
	cmd.Flags().StringVar(&sortBy, "sort", "", "title, author or readStatus")
	return cmd
}

func statusFilter(filter string) (func(book.Book) bool, error) {
	switch strings.ToLower(filter) {
	case "":
		return func(book.Book) bool { return true }, nil
	case "read":
		return func(b book.Book) bool { return b.IsRead }, nil
	case "unread":
		return func(b book.Book) bool { return !b.IsRead }, nil
	default:
		return nil, fmt.Errorf("unknown filter %q (want read or unread)", filter)
	}
}

func printBooks(w io.Writer, books []book.Book) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tAUTHOR\tREAD\tRATING")
	for i, b := range books {
		read := "no"
		if b.IsRead {
			read = "yes"
		}
		rating := "-"
		if b.HasRating() {
			rating = strings.Repeat("*", b.Stars())
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, b.Title, b.Author, read, rating)
	}
	return tw.Flush()
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := opts.library()
			if err != nil {
				return err
			}
			s := lib.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "Books:    %d\nRead:     %d\nUnread:   %d\nProgress: %.0f%%\n",
				s.Count, s.ReadCount, s.UnreadCount, s.ReadingProgress*100)
			return nil
		},
	}
}
