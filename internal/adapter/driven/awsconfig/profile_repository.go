package awsconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/aws-sso-manager-go/internal/domain/entity"
	"github.com/diillson/aws-sso-manager-go/internal/domain/repository"
	"github.com/diillson/aws-sso-manager-go/internal/shared/fileutil"
	"gopkg.in/ini.v1"
)

const (
	keyStartURL  = "sso_start_url"
	keySSORegion = "sso_region"
	keyAccountID = "sso_account_id"
	keyRoleName  = "sso_role_name"
	keyOutput    = "output"
	keyRegion    = "region"
)

// ProfileRepositoryImpl implementa o ProfileRepository sobre o arquivo INI do AWS CLI.
type ProfileRepositoryImpl struct {
	path string
}

// NewProfileRepository cria uma nova implementação do ProfileRepository.
func NewProfileRepository(path string) repository.ProfileRepository {
	return &ProfileRepositoryImpl{path: path}
}

func (r *ProfileRepositoryImpl) Path() string {
	return r.path
}

// loadOptions keep nested AWS CLI blocks (s3 =, followed by indented keys)
// and values containing '#' or ';' intact across a save.
var loadOptions = ini.LoadOptions{
	Loose:               true,
	AllowNestedValues:   true,
	IgnoreInlineComment: true,
}

// load reads the whole file. A missing file is treated as empty.
func (r *ProfileRepositoryImpl) load() (*ini.File, error) {
	cfg, err := ini.LoadSources(loadOptions, r.path)
	if err != nil {
		return nil, fmt.Errorf("error reading AWS config %s: %w", r.path, err)
	}
	return cfg, nil
}

func (r *ProfileRepositoryImpl) UpsertProfiles(profiles []entity.SSOProfile) error {
	cfg, err := r.load()
	if err != nil {
		return err
	}

	for _, p := range profiles {
		writeSection(cfg, p)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0700); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", r.path, err)
	}

	if err := cfg.SaveTo(r.path); err != nil {
		return fmt.Errorf("error writing AWS config %s: %w", r.path, err)
	}
	return nil
}

// writeSection replaces every key of the profile's section, keeping the
// section at its current position when it already exists.
func writeSection(cfg *ini.File, p entity.SSOProfile) {
	sec, err := cfg.GetSection(p.SectionName())
	if err != nil {
		sec, _ = cfg.NewSection(p.SectionName())
	}
	for _, k := range sec.KeyStrings() {
		sec.DeleteKey(k)
	}

	sec.Key(keyStartURL).SetValue(p.StartURL)
	sec.Key(keySSORegion).SetValue(p.SSORegion)
	sec.Key(keyAccountID).SetValue(p.AccountID)
	sec.Key(keyRoleName).SetValue(p.RoleName)
	sec.Key(keyOutput).SetValue(p.Output)
	if p.HasRegion() {
		sec.Key(keyRegion).SetValue(p.Region)
	}
}

func (r *ProfileRepositoryImpl) ListProfiles() ([]entity.SSOProfile, error) {
	cfg, err := r.load()
	if err != nil {
		return nil, err
	}

	profiles := []entity.SSOProfile{}
	for _, sec := range cfg.Sections() {
		if !entity.IsManagedSection(sec.Name()) {
			continue
		}
		profiles = append(profiles, entity.SSOProfile{
			Name:      entity.ProfileNameFromSection(sec.Name()),
			AccountID: sec.Key(keyAccountID).String(),
			StartURL:  sec.Key(keyStartURL).String(),
			SSORegion: sec.Key(keySSORegion).String(),
			RoleName:  sec.Key(keyRoleName).String(),
			Output:    sec.Key(keyOutput).String(),
			Region:    sec.Key(keyRegion).String(),
		})
	}
	return profiles, nil
}

func (r *ProfileRepositoryImpl) Clear() (bool, error) {
	return fileutil.RemoveIfExists(r.path)
}
