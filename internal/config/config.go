package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	DefaultMoneyHandlingRoles = []string{"Treasurer", "Head Coach", "Coach", "Accounts User", "System Manager", "Administrator"}
	DefaultCustodyRoles       = []string{"Treasurer", "Head Coach", "Accounts User", "System Manager", "Administrator"}
)

type Config struct {
	Address string `env:"RUN_ADDRESS"  envDefault:"localhost:8080"`
	LogLvl  string `env:"LOG_LVL"      envDefault:"info"`

	ERPURL          string        `env:"ERP_URL"           envDefault:"http://localhost:8000"`
	ERPAPIKey       string        `env:"ERP_API_KEY"`
	ERPAPISecret    string        `env:"ERP_API_SECRET"`
	ERPReadTimeout  time.Duration `env:"ERP_READ_TIMEOUT"  envDefault:"10s"`
	ERPWriteTimeout time.Duration `env:"ERP_WRITE_TIMEOUT" envDefault:"15s"`

	Database string `env:"DATABASE_URI"`

	Currency          string `env:"CURRENCY"           envDefault:"SRD"`
	Company           string `env:"COMPANY"`
	ModeOfPayment     string `env:"MODE_OF_PAYMENT"    envDefault:"Cash"`
	ReceivableAccount string `env:"RECEIVABLE_ACCOUNT" envDefault:"Debtors - IB"`
	CashAccount       string `env:"CASH_ACCOUNT"       envDefault:"Cash - IB"`

	SessionTTL           time.Duration `env:"SESSION_TTL"            envDefault:"30m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	ReconcileInterval    time.Duration `env:"RECONCILE_INTERVAL"     envDefault:"1m"`

	KioskSecret string `env:"KIOSK_JWT_SECRET" envDefault:"frontdesk-dev-secret"`
	RolesFile   string `env:"ROLES_FILE"`

	Roles Roles `env:"-"`
}

// Roles are the allow-lists that gate money movement.
type Roles struct {
	MoneyHandling []string `yaml:"money_handling"`
	Custody       []string `yaml:"custody"`
}

func New() *Config {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.ERPURL, "e", cfg.ERPURL, "ERPNext base url")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN for the payment attempt journal")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	if !strings.HasPrefix(cfg.ERPURL, "http://") && !strings.HasPrefix(cfg.ERPURL, "https://") {
		cfg.ERPURL = "http://" + cfg.ERPURL
	}
	cfg.ERPURL = strings.TrimRight(cfg.ERPURL, "/")

	cfg.Roles = Roles{
		MoneyHandling: DefaultMoneyHandlingRoles,
		Custody:       DefaultCustodyRoles,
	}

	return cfg
}

// LoadRoles overrides the default allow-lists with the YAML file at cfg.RolesFile.
// Lists missing from the file keep their defaults.
func (c *Config) LoadRoles() error {
	if c.RolesFile == "" {
		return nil
	}
	data, err := os.ReadFile(c.RolesFile)
	if err != nil {
		return fmt.Errorf("read roles file: %w", err)
	}
	var roles Roles
	if err := yaml.Unmarshal(data, &roles); err != nil {
		return fmt.Errorf("parse roles file: %w", err)
	}
	if len(roles.MoneyHandling) > 0 {
		c.Roles.MoneyHandling = roles.MoneyHandling
	}
	if len(roles.Custody) > 0 {
		c.Roles.Custody = roles.Custody
	}
	return nil
}
