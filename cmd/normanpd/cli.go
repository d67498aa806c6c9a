package main

import (
	"net/url"
	"time"

	"github.com/fwojciec/blotter"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Incidents string        `required:"" help:"URL of the daily incident summary PDF, or of a page linking it"`
	DB        string        `name:"db" default:"resources/normanpd.db" env:"NORMANPD_DB" help:"SQLite database path, recreated on every run"`
	JSON      string        `name:"json" default:"incidents.json" help:"Write extracted incidents to this JSON file (empty to skip)"`
	XLSX      string        `name:"xlsx" help:"Also write extracted incidents to this XLSX workbook"`
	Layout    string        `help:"YAML file overriding page layout and classifier exceptions"`
	Timeout   time.Duration `default:"30s" help:"Timeout for each download attempt"`
	Rate      float64       `default:"1" help:"Maximum requests per second to the publisher, 0 for no limit"`
	LogFile   string        `name:"log-file" env:"NORMANPD_LOG_FILE" help:"Write JSON logs to this rotating file instead of stderr"`
	Verbose   bool          `short:"v" help:"Log debug output, including the first stored rows"`
}

// validate checks flag values kong cannot check on its own.
func (c *CLI) validate() error {
	u, err := url.Parse(c.Incidents)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return blotter.Errorf(blotter.EINVALID, "--incidents must be an http(s) URL, got %q", c.Incidents)
	}
	if c.DB == "" {
		return blotter.Errorf(blotter.EINVALID, "--db must not be empty")
	}
	if c.Rate < 0 {
		return blotter.Errorf(blotter.EINVALID, "--rate must not be negative")
	}
	if c.Timeout <= 0 {
		return blotter.Errorf(blotter.EINVALID, "--timeout must be positive")
	}
	return nil
}
