package commands

import (
	"fmt"
	"modfinder/lib/render"
	"modfinder/lib/scrapers/swgohgg"
	"modfinder/lib/telemetry"
)

type OutputConfig struct {
	Columns      int    `json:"columns"`
	Layout       string `json:"layout"`
	MessageLimit int    `json:"message_limit"`
}

type ServeConfig struct {
	Port int `json:"port"`
}

type Config struct {
	Source    swgohgg.ClientOptions `json:"source"`
	Output    OutputConfig          `json:"output"`
	Serve     ServeConfig           `json:"serve"`
	Telemetry telemetry.Config      `json:"telemetry"`
}

func DefaultConfig() Config {
	return Config{
		Source: swgohgg.ClientOptions{
			Url:            swgohgg.DefaultUrl,
			TimeoutSeconds: 30,
		},
		Output: OutputConfig{
			Columns:      2,
			Layout:       string(render.RowMajor),
			MessageLimit: render.DefaultMessageLimit,
		},
		Serve: ServeConfig{
			Port: 8000,
		},
	}
}

func (c OutputConfig) renderOptions() (render.Options, error) {
	layout, err := render.ParseLayout(c.Layout)
	if err != nil {
		return render.Options{}, err
	}
	if c.MessageLimit > 0 && c.MessageLimit < render.MinMessageLimit {
		return render.Options{}, fmt.Errorf("message_limit must be at least %d, got %d", render.MinMessageLimit, c.MessageLimit)
	}
	return render.Options{
		Columns: c.Columns,
		Layout:  layout,
	}, nil
}
