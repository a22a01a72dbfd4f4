package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/aidanlsb/journey/internal/atomicfile"
	"github.com/aidanlsb/journey/internal/dates"
	"github.com/aidanlsb/journey/internal/journal"
	"github.com/aidanlsb/journey/internal/locale"
	"github.com/aidanlsb/journey/internal/pathfmt"
	"github.com/aidanlsb/journey/internal/paths"
	"github.com/aidanlsb/journey/internal/phrases"
	"github.com/aidanlsb/journey/internal/template"
)

// VaultConfigFile is the per-vault settings file at the vault root.
const VaultConfigFile = "journey.yaml"

// VaultConfig represents vault-level configuration from journey.yaml.
type VaultConfig struct {
	// Locale selects the date/time patterns and names (e.g. "en", "no", "nb_NO.UTF-8").
	Locale string `yaml:"locale" json:"locale"`

	// DateFormat forces date parsing to a single pattern. It also formats
	// date values in templates.
	DateFormat *string `yaml:"date_format,omitempty" json:"date_format,omitempty"`

	// TimeFormat forces time parsing to "12h" or "24h".
	TimeFormat *string `yaml:"time_format,omitempty" json:"time_format,omitempty"`

	// FilePathFormat is a path template such as "{year}/{month:02}/{date}.md".
	FilePathFormat *string `yaml:"file_path_format,omitempty" json:"file_path_format,omitempty"`

	// TemplateFile is used for new documents. Relative paths resolve against the vault.
	TemplateFile *string `yaml:"template_file,omitempty" json:"template_file,omitempty"`

	// SectionHeader is the section notes go under when no category is given.
	SectionHeader *string `yaml:"section_header,omitempty" json:"section_header,omitempty"`

	// Deprecated: use SectionHeader. Read for older vaults.
	SectionName *string `yaml:"section_name,omitempty" json:"section_name,omitempty"`

	Categories map[string]string `yaml:"categories,omitempty" json:"categories,omitempty"`
	Phrases    map[string]string `yaml:"phrases,omitempty" json:"phrases,omitempty"`

	// ListType is "bullet" (default) or "table".
	ListType string `yaml:"list_type,omitempty" json:"list_type,omitempty"`

	// TableHeader overrides the locale's column labels.
	TableHeader     *locale.TableHeader `yaml:"table_header,omitempty" json:"table_header,omitempty"`
	ShowTableHeader *bool               `yaml:"show_table_header,omitempty" json:"show_table_header,omitempty"`
}

// Validate validates the vault configuration.
func (vc *VaultConfig) Validate() error {
	return validation.ValidateStruct(vc,
		validation.Field(&vc.Locale, validation.Required),
		validation.Field(&vc.ListType, validation.In(string(journal.ListBullet), string(journal.ListTable))),
		validation.Field(&vc.TimeFormat, validation.NilOrNotEmpty, validation.By(func(value interface{}) error {
			if p, ok := value.(*string); ok && p != nil {
				_, err := dates.ParseTimeOverride(*p)
				return err
			}
			return nil
		})),
		validation.Field(&vc.DateFormat, validation.NilOrNotEmpty, validation.By(func(value interface{}) error {
			if p, ok := value.(*string); ok && p != nil {
				return dates.ValidatePattern(*p)
			}
			return nil
		})),
	)
}

// DefaultVaultConfig returns the settings used when journey.yaml is absent.
func DefaultVaultConfig() *VaultConfig {
	return &VaultConfig{
		Locale:   "en-US",
		ListType: string(journal.ListBullet),
	}
}

// LoadVaultConfig loads journey.yaml from the vault root, falling back to
// defaults when the file is missing.
func LoadVaultConfig(vaultPath string) (*VaultConfig, error) {
	configPath := filepath.Join(vaultPath, VaultConfigFile)

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultVaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read vault config %s: %w", configPath, err)
	}

	config := DefaultVaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, &ParseError{Path: configPath, Err: err}
	}
	if strings.TrimSpace(config.ListType) == "" {
		config.ListType = string(journal.ListBullet)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid vault config %s: %w", configPath, err)
	}
	return config, nil
}

// SaveVaultConfig writes the vault config to journey.yaml.
func SaveVaultConfig(vaultPath string, cfg *VaultConfig) error {
	configPath := filepath.Join(vaultPath, VaultConfigFile)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := atomicfile.WriteFile(configPath, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", VaultConfigFile, err)
	}
	return nil
}

// CreateDefaultVaultConfig writes a journey.yaml unless one exists.
// Returns true if a new file was created.
func CreateDefaultVaultConfig(vaultPath string, cfg *VaultConfig) (bool, error) {
	configPath := filepath.Join(vaultPath, VaultConfigFile)
	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	}
	if cfg == nil {
		cfg = DefaultVaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return false, err
	}
	if err := SaveVaultConfig(vaultPath, cfg); err != nil {
		return false, err
	}
	return true, nil
}

// Profile returns the locale profile for this vault.
func (vc *VaultConfig) Profile() *locale.Profile {
	return locale.Lookup(vc.Locale)
}

// TimeOverride returns the configured clock family, if any.
func (vc *VaultConfig) TimeOverride() (dates.TimeOverride, error) {
	if vc.TimeFormat == nil {
		return dates.TimeOverrideNone, nil
	}
	return dates.ParseTimeOverride(*vc.TimeFormat)
}

// DateOverride returns the configured forced date pattern, if any.
func (vc *VaultConfig) DateOverride() dates.DateOverride {
	return dates.DateOverrideFrom(vc.DateFormat)
}

// Section returns the default section header, or "".
func (vc *VaultConfig) Section() string {
	if vc.SectionHeader != nil {
		return strings.TrimSpace(*vc.SectionHeader)
	}
	if vc.SectionName != nil {
		return strings.TrimSpace(*vc.SectionName)
	}
	return ""
}

// SectionFor maps a category to its header. Unknown categories are used as
// the header text themselves; an empty category selects the default section.
func (vc *VaultConfig) SectionFor(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return vc.Section()
	}
	if header, ok := vc.Categories[category]; ok && strings.TrimSpace(header) != "" {
		return strings.TrimSpace(header)
	}
	return category
}

// Format returns the rendering settings for entries. The table header row is
// only written when show_table_header is set to true.
func (vc *VaultConfig) Format() journal.Format {
	f := journal.Format{
		ListType:    journal.ListBullet,
		TableHeader: vc.Profile().TableHeader,
	}
	if vc.ListType == string(journal.ListTable) {
		f.ListType = journal.ListTable
	}
	if vc.TableHeader != nil {
		if vc.TableHeader.Time != "" {
			f.TableHeader.Time = vc.TableHeader.Time
		}
		if vc.TableHeader.Content != "" {
			f.TableHeader.Content = vc.TableHeader.Content
		}
	}
	if vc.ShowTableHeader != nil {
		f.ShowTableHeader = *vc.ShowTableHeader
	}
	return f
}

// NotePath returns the absolute path of the document for date d, which
// must stay inside the vault.
func (vc *VaultConfig) NotePath(vaultPath string, d time.Time) (string, error) {
	rel := pathfmt.NotePath(vc.FilePathFormat, d, vc.Profile())
	return paths.ResolveInVault(vaultPath, rel)
}

// JournalOptions assembles the composer options for this vault, loading the
// template file if one is configured.
func (vc *VaultConfig) JournalOptions(vaultPath string) (journal.Options, error) {
	opts := journal.Options{
		Format:  vc.Format(),
		Locale:  vc.Profile(),
		Phrases: phrases.New(vc.Phrases),
		Section: vc.Section(),
	}
	if p, ok := vc.DateOverride().Pattern(); ok {
		opts.DatePattern = p
	}
	if vc.TemplateFile != nil {
		content, err := template.Load(vaultPath, *vc.TemplateFile)
		if err != nil {
			return journal.Options{}, err
		}
		opts.Template = content
	}
	return opts, nil
}
