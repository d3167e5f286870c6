// Package store persists the pipeline's CSV artifacts: the aggregator
// extract, the collected catalog, and the curated output.
package store

import (
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/daoatlas/daoatlas/pkg/constants"
	"github.com/daoatlas/daoatlas/pkg/daos"
	"github.com/daoatlas/daoatlas/pkg/errors"
)

// Exists reports whether a file exists at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// LoadOrgInfos reads the aggregator extract.
func LoadOrgInfos(path string) ([]*daos.OrgInfo, error) {
	var infos []*daos.OrgInfo
	if err := load(path, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// SaveOrgInfos writes the aggregator extract.
func SaveOrgInfos(path string, infos []*daos.OrgInfo) error {
	return save(path, infos)
}

// LoadCurated reads a curated input sheet.
func LoadCurated(path string) ([]*daos.CuratedRow, error) {
	var rows []*daos.CuratedRow
	if err := load(path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// LoadCollected reads a collected catalog.
func LoadCollected(path string) ([]*daos.CollectedRecord, error) {
	var records []*daos.CollectedRecord
	if err := load(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SaveCollected writes the collected catalog.
func SaveCollected(path string, records []*daos.CollectedRecord) error {
	return save(path, records)
}

// SaveCurated writes the enriched curated output.
func SaveCurated(path string, records []*daos.CuratedRecord) error {
	return save(path, records)
}

// LoadCuratedRecords reads an enriched curated output back.
func LoadCuratedRecords(path string) ([]*daos.CuratedRecord, error) {
	var records []*daos.CuratedRecord
	if err := load(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func load(path string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		return errors.WrapParse("csv", path, err)
	}
	return nil
}

func save(path string, records interface{}) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}

	if err := gocsv.MarshalFile(records, f); err != nil {
		f.Close() //nolint:errcheck // marshal error takes precedence
		return errors.WrapParse("csv", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}
