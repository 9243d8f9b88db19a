// Package config provides the YAML plan loader for camplan.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/camplan/internal/core/domain"
	"go.trai.ch/camplan/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.PlanLoader = (*Loader)(nil)

// DefaultCacheDir is used when the plan does not configure one.
const DefaultCacheDir = ".camplan/artifacts"

var validNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Loader implements ports.PlanLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the plan file at path and returns the parsed plan.
func (l *Loader) Load(path string) (*domain.Plan, error) {
	//nolint:gosec // Path is provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrPlanNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read plan file"), "path", path)
	}

	var file PlanFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse plan file"), "path", path)
	}

	catalog, err := l.buildCatalog(file.Shops)
	if err != nil {
		return nil, err
	}

	parts, err := l.buildParts(file.Parts)
	if err != nil {
		return nil, err
	}

	cacheDir := file.Cache.Dir
	if cacheDir == "" {
		cacheDir = DefaultCacheDir
	}

	l.Logger.Info(fmt.Sprintf("loaded plan %s: %d shops, %d parts", path, len(catalog.Shops), len(parts)))

	return &domain.Plan{
		Catalog:  catalog,
		Parts:    parts,
		CacheDir: cacheDir,
	}, nil
}

func (l *Loader) buildCatalog(shops []ShopDTO) (domain.Catalog, error) {
	catalog := domain.Catalog{Shops: make([]domain.Shop, 0, len(shops))}

	for _, shopDTO := range shops {
		shop := domain.Shop{
			ID:       shopDTO.ID,
			Name:     shopDTO.Name,
			Machines: make([]domain.Machine, 0, len(shopDTO.Machines)),
		}
		for _, machineDTO := range shopDTO.Machines {
			machine := domain.Machine{
				ID:         machineDTO.ID,
				Name:       machineDTO.Name,
				Controller: machineDTO.Controller,
				Tools:      make([]domain.Tool, 0, len(machineDTO.Tools)),
			}
			for _, toolDTO := range machineDTO.Tools {
				tool, err := buildTool(toolDTO)
				if err != nil {
					return domain.Catalog{}, zerr.With(err, "machine", machineDTO.Name)
				}
				machine.Tools = append(machine.Tools, tool)
			}
			shop.Machines = append(shop.Machines, machine)
		}
		catalog.Shops = append(catalog.Shops, shop)
	}

	return catalog, nil
}

func buildTool(dto ToolDTO) (domain.Tool, error) {
	toolType, err := parseToolType(dto.Type)
	if err != nil {
		return domain.Tool{}, err
	}

	priorities := make(map[domain.Kind]float64, len(dto.Priority))
	for kindName, score := range dto.Priority {
		kind, err := parseKind(kindName)
		if err != nil {
			return domain.Tool{}, zerr.With(err, "tool_number", dto.Number)
		}
		priorities[kind] = score
	}

	return domain.Tool{
		Number:       dto.Number,
		Type:         toolType,
		Diameter:     dto.Diameter,
		UsableLength: dto.UsableLength,
		Priorities:   priorities,
	}, nil
}

func (l *Loader) buildParts(parts []PartDTO) ([]domain.Part, error) {
	result := make([]domain.Part, 0, len(parts))
	partNames := make(map[string]bool, len(parts))

	for _, partDTO := range parts {
		if err := validateName(partDTO.Name); err != nil {
			return nil, err
		}
		if partNames[partDTO.Name] {
			return nil, zerr.With(domain.ErrDuplicateName, "part", partDTO.Name)
		}
		partNames[partDTO.Name] = true

		part := domain.Part{
			Name:   domain.NewInternedString(partDTO.Name),
			Setups: make([]domain.Setup, 0, len(partDTO.Setups)),
		}

		setupIDs := make(map[string]bool, len(partDTO.Setups))
		for _, setupDTO := range partDTO.Setups {
			if setupIDs[setupDTO.ID] {
				return nil, zerr.With(domain.ErrDuplicateName, "setup", setupDTO.ID)
			}
			setupIDs[setupDTO.ID] = true

			setup, err := l.buildSetup(partDTO.Name, setupDTO)
			if err != nil {
				return nil, err
			}
			part.Setups = append(part.Setups, setup)
		}

		result = append(result, part)
	}

	return result, nil
}

func (l *Loader) buildSetup(partName string, dto SetupDTO) (domain.Setup, error) {
	setup := domain.Setup{
		ID:         domain.NewInternedString(partName + "." + dto.ID),
		Operations: make([]domain.Operation, 0, len(dto.Operations)),
	}

	opNames := make(map[string]bool, len(dto.Operations))
	for _, opDTO := range dto.Operations {
		fullName := partName + "." + dto.ID + "." + opDTO.Name
		if err := validateName(opDTO.Name); err != nil {
			return domain.Setup{}, zerr.With(err, "setup", dto.ID)
		}
		if opNames[opDTO.Name] {
			return domain.Setup{}, zerr.With(domain.ErrDuplicateName, "operation", fullName)
		}
		opNames[opDTO.Name] = true

		op, err := buildOperation(fullName, setup.ID, opDTO)
		if err != nil {
			return domain.Setup{}, err
		}
		setup.Operations = append(setup.Operations, op)
	}

	return setup, nil
}

func buildOperation(fullName string, setupID domain.InternedString, dto OperationDTO) (domain.Operation, error) {
	kind, err := parseKind(dto.Kind)
	if err != nil {
		return domain.Operation{}, zerr.With(err, "operation", fullName)
	}

	op := domain.Operation{
		Name:         domain.NewInternedString(fullName),
		SetupID:      setupID,
		Fence:        dto.Fence,
		Kind:         kind,
		Depth:        dto.Depth,
		HoleDiameter: dto.Diameter,
		Threaded:     dto.Threaded,
		Active:       !dto.Disabled,
	}

	if dto.Profile != nil {
		applyProfile(&op, dto.Profile)
	}

	op.Params = buildParams(op, dto)
	return op, nil
}

// applyProfile copies the diameter bounds out of the geometry
// collaborator's profile summary.
func applyProfile(op *domain.Operation, profile ports.Profile) {
	op.MinInternalRadius = profile.MinInternalRadius()
	op.MinExternalRadius = profile.MinExternalRadius()
}

// buildParams assembles the parameter tree that defines the operation's
// artifact. Everything that changes the produced geometry belongs in here;
// fences and activity flags do not.
func buildParams(op domain.Operation, dto OperationDTO) domain.Param {
	params := domain.List{
		domain.Str(op.Kind),
		domain.Num(op.Depth),
	}

	switch op.Kind {
	case domain.KindDrill:
		threaded := domain.Num(0)
		if op.Threaded {
			threaded = domain.Num(1)
		}
		positions := make(domain.List, 0, len(dto.Positions))
		for _, pos := range dto.Positions {
			positions = append(positions, domain.List{domain.Num(pos[0]), domain.Num(pos[1])})
		}
		params = append(params, domain.Num(op.HoleDiameter), threaded, positions)
	case domain.KindContour, domain.KindPocket:
		var profile domain.List
		if dto.Profile != nil {
			profile = domain.List{
				domain.Num(dto.Profile.MinInternalRadius()),
				domain.Num(dto.Profile.MinExternalRadius()),
				domain.Num(dto.Profile.Area()),
				domain.Num(dto.Profile.Perimeter()),
			}
		}
		params = append(params, profile)
	}

	return params
}

func parseKind(name string) (domain.Kind, error) {
	switch domain.Kind(name) {
	case domain.KindContour, domain.KindPocket, domain.KindDrill:
		return domain.Kind(name), nil
	default:
		return "", zerr.With(domain.ErrUnknownKind, "kind", name)
	}
}

func parseToolType(name string) (domain.ToolType, error) {
	switch domain.ToolType(name) {
	case domain.ToolEndMill, domain.ToolMillDrill, domain.ToolDrill,
		domain.ToolTap, domain.ToolDowel, domain.ToolSlide:
		return domain.ToolType(name), nil
	default:
		return "", zerr.With(domain.ErrUnknownToolType, "type", name)
	}
}

func validateName(name string) error {
	if name == "" || !validNameRegex.MatchString(name) || strings.Contains(name, "__") {
		return zerr.With(domain.ErrInvalidOperationName, "name", name)
	}
	return nil
}
