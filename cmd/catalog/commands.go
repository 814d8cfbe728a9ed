package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	catalog "github.com/lanrat/csvcatalog"
)

// options holds the values shared by every subcommand
type options struct {
	out        io.Writer
	configFile string
	config     catalog.Config
}

// NewCatalogCommand builds the catalog command tree writing results to out
func NewCatalogCommand(out io.Writer) *cobra.Command {
	o := &options{out: out}
	defaults := catalog.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Sort, search and edit a CSV book catalog",

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configFile, "config", "", "YAML file with catalog settings, flags override it")
	flags.StringVar(&o.config.CatalogFile, "catalog", defaults.CatalogFile, "headerless CSV file holding the catalog")
	flags.StringVar(&o.config.SnapshotDir, "data-dir", defaults.SnapshotDir, "directory sorted snapshots are written to")
	flags.IntVar(&o.config.NumSortWorkers, "workers", defaults.NumSortWorkers, "maximum number of snapshots sorted at once")

	cmd.AddCommand(
		newSortCommand(o),
		newSearchCommand(o),
		newAddCommand(o),
		newDeleteCommand(o),
		newShowCommand(o),
		newListCommand(o),
	)
	return cmd
}

// open merges the config file with any flags set explicitly and opens the catalog
func (o *options) open(cmd *cobra.Command) (*catalog.Session, error) {
	config := o.config
	if o.configFile != "" {
		fileConfig, err := catalog.LoadConfig(o.configFile)
		if err != nil {
			return nil, err
		}
		flags := cmd.Flags()
		if flags.Changed("catalog") {
			fileConfig.CatalogFile = config.CatalogFile
		}
		if flags.Changed("data-dir") {
			fileConfig.SnapshotDir = config.SnapshotDir
		}
		if flags.Changed("workers") {
			fileConfig.NumSortWorkers = config.NumSortWorkers
		}
		config = *fileConfig
	}
	return catalog.Open(&config)
}

// attributeOrder parses the --attribute and --order flag values
func attributeOrder(attribute, order string) (catalog.Attribute, catalog.Order, error) {
	a, err := catalog.ParseAttribute(attribute)
	if err != nil {
		return a, 0, err
	}
	ord, err := catalog.ParseOrder(order)
	return a, ord, err
}

func newSortCommand(o *options) *cobra.Command {
	var attribute, order string
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Write sorted snapshots, all ten unless --attribute is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if attribute == "" && cmd.Flags().Changed("order") {
				return fmt.Errorf("--order needs --attribute, a full sort writes both orders")
			}
			session, err := o.open(cmd)
			if err != nil {
				return err
			}
			if attribute == "" {
				if err := session.SortAll(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(o.out, "Sorted %d books into %s\n", session.Len(), session.Config().SnapshotDir)
				return nil
			}
			a, ord, err := attributeOrder(attribute, order)
			if err != nil {
				return err
			}
			if err := session.Sort(cmd.Context(), a, ord); err != nil {
				return err
			}
			fmt.Fprintf(o.out, "New sorted data is available at: %s\n", session.SnapshotPath(a, ord))
			return nil
		},
	}
	cmd.Flags().StringVar(&attribute, "attribute", "", "attribute to sort by: isbn, title, author, length or date_of_publication")
	cmd.Flags().StringVar(&order, "order", "asc", "sort order: asc or desc")
	return cmd
}

func newSearchCommand(o *options) *cobra.Command {
	var attribute string
	cmd := &cobra.Command{
		Use:   "search TERM",
		Short: "Find a book in the ascending snapshot, sort first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := catalog.ParseAttribute(attribute)
			if err != nil {
				return err
			}
			session, err := o.open(cmd)
			if err != nil {
				return err
			}
			book, err := session.Search(a, args[0])
			if err != nil {
				return err
			}
			printBook(o.out, book)
			return nil
		},
	}
	cmd.Flags().StringVar(&attribute, "attribute", "isbn", "attribute to search by")
	return cmd
}

func newAddCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add ISBN TITLE AUTHOR LENGTH DATE",
		Short: "Append a book, re-sort and save the catalog",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := catalog.BookFromRecord(args)
			if err != nil {
				return err
			}
			// adding invalidates every snapshot, so reject a book the re-sort would fail on
			if err := catalog.Length.Check(book.Length); err != nil {
				return err
			}
			session, err := o.open(cmd)
			if err != nil {
				return err
			}
			if err := session.Add(book); err != nil {
				return err
			}
			if err := session.SortAll(cmd.Context()); err != nil {
				return err
			}
			if err := session.Save(); err != nil {
				return err
			}
			fmt.Fprintln(o.out, "New book added. Books have been re-sorted.")
			return nil
		},
	}
}

func newDeleteCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ISBN",
		Short: "Remove a book, re-sort and save the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := o.open(cmd)
			if err != nil {
				return err
			}
			if err := session.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			if err := session.Save(); err != nil {
				return err
			}
			fmt.Fprintln(o.out, "The book has been deleted. Books have been re-sorted.")
			return nil
		},
	}
}

func newShowCommand(o *options) *cobra.Command {
	var attribute, order string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a sorted snapshot as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ord, err := attributeOrder(attribute, order)
			if err != nil {
				return err
			}
			session, err := o.open(cmd)
			if err != nil {
				return err
			}
			books, err := session.Snapshot(a, ord)
			if err != nil {
				return err
			}
			return catalog.EncodeBooks(o.out, books)
		},
	}
	cmd.Flags().StringVar(&attribute, "attribute", "isbn", "attribute the snapshot is sorted by")
	cmd.Flags().StringVar(&order, "order", "asc", "order of the snapshot: asc or desc")
	return cmd
}

func newListCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the catalog in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := o.open(cmd)
			if err != nil {
				return err
			}
			for _, b := range session.Records() {
				fmt.Fprintln(o.out)
				for _, f := range b.Record() {
					fmt.Fprintln(o.out, f)
				}
			}
			return nil
		},
	}
}

func printBook(out io.Writer, b catalog.Book) {
	fmt.Fprintf(out, "Title: %s\nAuthor: %s\nPage length: %s\nDate published: %s\nISBN: %s\n",
		b.Title, b.Author, b.Length, b.DateOfPublication, b.ISBN)
}
