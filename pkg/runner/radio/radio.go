// Package radio manages the saved station list, which lives in the
// appliance configuration. Every change is a read-modify-write of the whole
// config document so unrelated sections survive untouched.
package radio

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayco/zilctl/pkg/client"
	"github.com/nikolayco/zilctl/pkg/printers"
)

// List prints the saved stations.
type List struct {
	Client *client.Client
}

func (l *List) Do(ctx context.Context) error {
	cfg, err := l.Client.FetchConfig(ctx)
	if err != nil {
		return err
	}
	stations, err := cfg.Stations()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("radio stations")
	pp.Stations(stations)
	return nil
}

// Add saves a new station. Duplicate names are rejected before any write.
type Add struct {
	Client *client.Client
	Name   string
	URL    string
}

func (a *Add) Do(ctx context.Context) error {
	if a.Name == "" || a.URL == "" {
		return errors.New("a station needs both a name and a URL")
	}
	cfg, err := a.Client.FetchConfig(ctx)
	if err != nil {
		return err
	}
	stations, err := cfg.Stations()
	if err != nil {
		return err
	}
	for _, s := range stations {
		if s.Name == a.Name {
			return fmt.Errorf("a station named %q already exists", a.Name)
		}
	}
	stations = append(stations, client.Station{Name: a.Name, URL: a.URL})
	if err := cfg.SetStations(stations); err != nil {
		return err
	}
	if err := a.Client.SaveConfig(ctx, cfg); err != nil {
		return err
	}
	fmt.Printf("station %q added\n", a.Name)
	return nil
}

// Remove deletes a station by name.
type Remove struct {
	Client *client.Client
	Name   string
}

func (r *Remove) Do(ctx context.Context) error {
	cfg, err := r.Client.FetchConfig(ctx)
	if err != nil {
		return err
	}
	stations, err := cfg.Stations()
	if err != nil {
		return err
	}
	kept := stations[:0]
	found := false
	for _, s := range stations {
		if s.Name == r.Name {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return fmt.Errorf("no station named %q", r.Name)
	}
	if err := cfg.SetStations(kept); err != nil {
		return err
	}
	if err := r.Client.SaveConfig(ctx, cfg); err != nil {
		return err
	}
	fmt.Printf("station %q removed\n", r.Name)
	return nil
}
