package domain

// WalletConversionContext is the ephemeral input of a wallet-to-wallet conversion in the UI.
type WalletConversionContext struct {
	FromCurrency string
	ToCurrency   string
	Amount       float64
}

// ConversionPreview holds the values derived from a WalletConversionContext.
// ConvertedAmount is never rounded; the formatted fields are for display only.
type ConversionPreview struct {
	FromCurrency       string
	ToCurrency         string
	Amount             float64
	Rate               float64
	ConvertedAmount    float64
	Supported          bool
	FormattedAmount    string
	FormattedConverted string
	FormattedRate      string
}

// SupportedCurrency describes a rate table entry for listing.
type SupportedCurrency struct {
	Code     string
	Symbol   string
	Fraction int
	PerUnit  float64
	UnitsPer float64
	IsUnit   bool
}
