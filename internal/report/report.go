// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders resolution results for the npmrc command.
//
// Secrets are never printed: credentials are rendered through their redacting
// String and MarshalJSON implementations only.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-npmrc/internal/auth"
	"github.com/MKhiriev/go-npmrc/internal/config"
	"github.com/MKhiriev/go-npmrc/models"
)

const none = "-"

// Printer writes styled reports to an output stream. Styling follows the
// color profile of that stream, so redirected output is plain text.
type Printer struct {
	out    io.Writer
	styles styles
}

// New returns a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// Value prints a raw config value on its own line, unstyled, so it can be
// consumed by scripts.
func (p *Printer) Value(value string) error {
	_, err := fmt.Fprintln(p.out, value)
	return err
}

// Registry prints the registry resolved for pkg.
func (p *Printer) Registry(pkg string, registryURL *url.URL) error {
	return p.page("Registry", [][2]string{
		{"package", pkg},
		{"registry", registryURL.String()},
	})
}

// Credentials prints the credentials resolved for registryURL, or a note
// that there are none.
func (p *Printer) Credentials(registryURL *url.URL, creds models.Credentials, ok bool) error {
	rows := [][2]string{
		{"registry", registryURL.String()},
		{"key", auth.NerfDart(registryURL)},
	}
	if !ok {
		rows = append(rows, [2]string{"kind", p.styles.muted.Render("no credentials")})
		return p.page("Credentials", rows)
	}

	rows = append(rows, [2]string{"kind", creds.Kind().String()})
	if user, _, hasUser := models.UsernamePassword(creds); hasUser {
		rows = append(rows, [2]string{"username", user})
	}
	if creds.Kind() != models.KindClientCertOnly {
		rows = append(rows, [2]string{"secret", models.Redacted})
	}

	cert, hasCert := creds.ClientCert()
	if hasCert {
		rows = append(rows, [2]string{"certfile", cert.Certfile}, [2]string{"keyfile", cert.Keyfile})
	} else {
		rows = append(rows, [2]string{"cert", none})
	}

	return p.page("Credentials", rows)
}

// Scopes prints scope to registry mappings sorted by scope.
func (p *Printer) Scopes(scopes map[string]*url.URL) error {
	rows := make([][2]string, 0, len(scopes))
	for _, scope := range slices.Sorted(maps.Keys(scopes)) {
		rows = append(rows, [2]string{scope, scopes[scope].String()})
	}
	return p.page("Scoped registries", rows)
}

// Layers prints every tier with its source and key count, marking absent
// ones.
func (p *Printer) Layers(cfg *config.Config) error {
	present := make(map[config.LayerKind]*config.Layer)
	for _, layer := range cfg.Layers() {
		present[layer.Kind()] = layer
	}

	rows := make([][2]string, 0, 6)
	for _, kind := range []config.LayerKind{config.LayerProject, config.LayerUser, config.LayerGlobal} {
		layer, ok := present[kind]
		if !ok {
			rows = append(rows, [2]string{kind.String(), p.styles.muted.Render("absent")})
			continue
		}
		rows = append(rows, [2]string{kind.String(), layer.Source() + " (" + plural(layer.Len(), "key") + ")"})
	}

	rows = append(rows,
		[2]string{"local prefix", valueOr(cfg.LocalPrefix, none)},
		[2]string{"global prefix", valueOr(cfg.GlobalPrefix, none)},
		[2]string{"home", valueOr(cfg.Home, none)},
	)
	return p.page("Layers", rows)
}

// BuildInfo prints version metadata.
func (p *Printer) BuildInfo(info models.AppBuildInfo) error {
	return p.page("go-npmrc", [][2]string{
		{"version", valueOr(info.BuildVersion(), "N/A")},
		{"date", valueOr(info.BuildDate(), "N/A")},
		{"commit", valueOr(info.BuildCommit(), "N/A")},
	})
}

// JSON prints v as indented JSON.
func (p *Printer) JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding report: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

func (p *Printer) page(title string, rows [][2]string) error {
	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row[0]))
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, p.styles.label.Width(width).Render(row[0])+"  "+row[1])
	}
	body := strings.Join(lines, "\n")
	if body == "" {
		body = p.styles.muted.Render("nothing configured")
	}

	_, err := fmt.Fprintln(p.out, p.styles.title.Render(title)+"\n"+p.styles.box.Render(body))
	return err
}

func valueOr(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
