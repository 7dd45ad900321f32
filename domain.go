package gravflow

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/maseology/gravflow/dem"
)

// Domain a filled DEM and its flow topology, built once per terrain and
// evaluated per vent scenario
type Domain struct {
	Fil *dem.Filled
	Top *dem.Topology
	Par Params
}

// NewDomain hydrologically corrects the DEM and builds its
// multiple-flow-direction topology
func NewDomain(d *dem.DEM, par Params) *Domain {
	fil := d.Fill()
	return &Domain{Fil: fil, Top: fil.Topology(par.exp()), Par: par}
}

// SaveGob snapshots the built domain so repeated scenario runs over the same
// terrain skip the fill and routing build
func (d *Domain) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" domain.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(d); err != nil {
		return fmt.Errorf(" domain.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadGobDomain(fp string) (*Domain, error) {
	var d Domain
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&d); err != nil {
		return nil, err
	}
	f.Close()
	return &d, nil
}
