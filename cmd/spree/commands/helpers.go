package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/openlabs/spree-go/pkg/spree"
	"github.com/openlabs/spree-go/pkg/spreeclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrInvalidFilterFormat = errors.New("invalid filter format, expected predicate=value")
	ErrOrderNumberRequired = errors.New("order number is required (use --order)")
)

// CreateClient builds a spree.Client from the resolved configuration: flags,
// SPREE_* environment variables, and the config file.
func CreateClient() (spree.Client, error) {
	config := &spree.Config{
		Endpoint: viper.GetString("api"),
		Token:    viper.GetString("token"),
		PerPage:  viper.GetInt("per_page"),
		Debug:    viper.GetBool("verbose"),
	}

	if config.Debug {
		config.Logger = &stderrLogger{}
	}

	client, err := spreeclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// parseFilters converts predicate=value pairs from --filter flags into
// ransack filters.
func parseFilters(pairs []string) (spree.Filters, error) {
	filters := spree.Filters{}

	for _, pair := range pairs {
		predicate, value, found := strings.Cut(pair, "=")
		if !found || predicate == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFilterFormat, pair)
		}

		filters[predicate] = value
	}

	return filters, nil
}

// collectPages gathers the items of the given page, following NextPage for
// the rest of the collection when all is set.
func collectPages[T any](ctx context.Context, page *spree.Page[T], all bool) ([]T, error) {
	items := append([]T(nil), page.Items...)

	for all && page.HasNext() {
		next, err := page.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching next page: %w", err)
		}

		items = append(items, next.Items...)
		page = next
	}

	return items, nil
}

// renderOutput writes v as JSON or YAML per the --output flag, falling back
// to the provided table renderer.
func renderOutput(v interface{}, tableFn func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(v)
		if err != nil {
			return fmt.Errorf("failed to encode as JSON: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(v)
		if err != nil {
			return fmt.Errorf("failed to encode as YAML: %w", err)
		}

		return encoder.Close()
	default:
		return tableFn()
	}
}

// pageFooter prints a hint when more pages remain and --all was not given.
func pageFooter(currentPage, pages int, all bool) {
	if !all && pages > currentPage {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing page %d of %d. Use --all to fetch all pages.\n", currentPage, pages)
	}
}

// stderrLogger writes structured log lines to stderr for --verbose runs.
type stderrLogger struct{}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		_, _ = fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	_, _ = fmt.Fprintln(os.Stderr)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}
