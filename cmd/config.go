package cmd

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	NatsURL               string
	RoutingMode           string
	DefaultStationID      string
	AutoFire              bool
	OrderTimeoutMinutes   int
	RequestTimeoutSeconds int
}
