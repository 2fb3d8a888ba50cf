package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Seeded front-desk administrator account.
	AdminUsername string
	AdminPassword string

	// Fiscal parameters. VAT applies to local-currency payment methods,
	// the FX transaction tax to foreign-currency ones; they are mutually
	// exclusive per payment.
	VATRate             decimal.Decimal
	FXTaxRate           decimal.Decimal
	SettlementTolerance decimal.Decimal

	// Fiscal document numbering.
	InvoiceSeqStart     int64
	ControlSeqStart     int64
	ControlNumberPrefix string

	// Exchange rate (display conversion only).
	DefaultExchangeRate decimal.Decimal
	RateAPIURL          string
	RateSyncTimeout     time.Duration

	// Rate limiting spec in ulule/limiter format, e.g. "300-M".
	RateLimit string

	// Property identity printed on fiscal documents.
	HotelName    string
	HotelTaxID   string
	HotelAddress string
	HotelPhone   string
}

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "hotel-pms-app")
	viper.SetDefault("ADMIN_USERNAME", "recepcion")
	viper.SetDefault("ADMIN_PASSWORD", "changeme")
	viper.SetDefault("VAT_RATE", "0.16")
	viper.SetDefault("FX_TAX_RATE", "0.03")
	viper.SetDefault("SETTLEMENT_TOLERANCE", "0.05")
	viper.SetDefault("INVOICE_SEQ_START", 1001)
	viper.SetDefault("CONTROL_SEQ_START", 1)
	viper.SetDefault("CONTROL_NUMBER_PREFIX", "00")
	viper.SetDefault("DEFAULT_EXCHANGE_RATE", "36.50")
	viper.SetDefault("RATE_API_URL", "https://ve.dolarapi.com/v1/dolares/oficial")
	viper.SetDefault("RATE_SYNC_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("HOTEL_NAME", "Nueva Toledo Suites & Hotel")
	viper.SetDefault("HOTEL_TAX_ID", "J-08024830-9")
	viper.SetDefault("HOTEL_ADDRESS", "Av. Principal del Mar, Edif. Oceanview, Planta Baja, Local 1, Lechería, Edo. Anzoátegui.")
	viper.SetDefault("HOTEL_PHONE", "+58 281 555 1234")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		jwtExpiry = 8 * time.Hour
		log.Printf("Warning: invalid JWT_EXPIRY_DURATION, defaulting to %s\n", jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	if cfg.AdminPassword == "changeme" {
		log.Println("Warning: ADMIN_PASSWORD environment variable not set. Using default password.")
	}

	cfg.VATRate, err = decimal.NewFromString(viper.GetString("VAT_RATE"))
	if err != nil {
		return nil, err
	}
	cfg.FXTaxRate, err = decimal.NewFromString(viper.GetString("FX_TAX_RATE"))
	if err != nil {
		return nil, err
	}
	cfg.SettlementTolerance, err = decimal.NewFromString(viper.GetString("SETTLEMENT_TOLERANCE"))
	if err != nil {
		return nil, err
	}
	cfg.DefaultExchangeRate, err = decimal.NewFromString(viper.GetString("DEFAULT_EXCHANGE_RATE"))
	if err != nil {
		return nil, err
	}

	cfg.InvoiceSeqStart = viper.GetInt64("INVOICE_SEQ_START")
	cfg.ControlSeqStart = viper.GetInt64("CONTROL_SEQ_START")
	cfg.ControlNumberPrefix = viper.GetString("CONTROL_NUMBER_PREFIX")

	cfg.RateAPIURL = viper.GetString("RATE_API_URL")
	cfg.RateSyncTimeout = viper.GetDuration("RATE_SYNC_TIMEOUT")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.HotelName = viper.GetString("HOTEL_NAME")
	cfg.HotelTaxID = viper.GetString("HOTEL_TAX_ID")
	cfg.HotelAddress = viper.GetString("HOTEL_ADDRESS")
	cfg.HotelPhone = viper.GetString("HOTEL_PHONE")

	return cfg, nil
}
