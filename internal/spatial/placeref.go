package spatial

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-udos/internal/logging"
	"github.com/goliatone/go-udos/pkg/interfaces"
)

// Spaces enumerates the realm component of a PlaceRef.
var Spaces = []string{"SUR", "SUB", "AIR", "SEA", "ORB"}

// IsKnownSpace reports membership in the space enum.
func IsKnownSpace(space string) bool {
	for _, known := range Spaces {
		if space == known {
			return true
		}
	}
	return false
}

// Service parses, formats, and validates PlaceRefs against the anchor
// registry.
type Service struct {
	anchors interfaces.AnchorRegistry
	logger  interfaces.Logger
}

// NewService wires a PlaceRef service over the given registry.
func NewService(anchors interfaces.AnchorRegistry, provider interfaces.LoggerProvider) *Service {
	return &Service{
		anchors: anchors,
		logger:  logging.SpatialLogger(provider),
	}
}

// Anchors exposes the registry backing this service.
func (s *Service) Anchors() interfaces.AnchorRegistry {
	return s.anchors
}

// ParsePlaceRef parses and validates a canonical colon-delimited reference:
// {anchor}:{space}:{locId}[:D{depth}][:I{instance}]. Every constraint failure
// names the violated check.
func (s *Service) ParsePlaceRef(value string) (interfaces.PlaceRef, error) {
	parts := strings.Split(value, ":")
	if len(parts) < 3 || len(parts) > 5 {
		return interfaces.PlaceRef{}, wrapValidation(errPlaceSyntax)
	}

	anchorID := parts[0]
	if anchorID == "" || !isAnchorToken(anchorID) {
		return interfaces.PlaceRef{}, wrapValidation(errPlaceSyntax)
	}

	space := parts[1]
	if !IsKnownSpace(space) {
		return interfaces.PlaceRef{}, wrapValidation(errSpaceUnknown)
	}

	loc, err := ParseLocID(parts[2])
	if err != nil {
		return interfaces.PlaceRef{}, err
	}

	ref := interfaces.PlaceRef{
		AnchorID: anchorID,
		Space:    space,
		Loc:      loc,
		Depth:    -1,
		Instance: -1,
	}

	for _, suffix := range parts[3:] {
		switch {
		case strings.HasPrefix(suffix, "D") && ref.Depth < 0 && ref.Instance < 0:
			depth, err := strconv.Atoi(suffix[1:])
			if err != nil || depth < 0 {
				return interfaces.PlaceRef{}, wrapValidation(errDepthInvalid)
			}
			ref.Depth = depth
		case strings.HasPrefix(suffix, "I") && ref.Instance < 0:
			instance, err := strconv.Atoi(suffix[1:])
			if err != nil || instance < 0 {
				return interfaces.PlaceRef{}, wrapValidation(errInstanceInvalid)
			}
			ref.Instance = instance
		default:
			return interfaces.PlaceRef{}, wrapValidation(errPlaceSyntax)
		}
	}

	if s != nil && s.anchors != nil {
		anchor, ok := s.anchors.Get(anchorID)
		if !ok {
			return interfaces.PlaceRef{}, wrapValidation(errAnchorUnknown)
		}
		if !anchor.Active() {
			return interfaces.PlaceRef{}, wrapValidation(errAnchorInactive)
		}
	}

	return ref, nil
}

// ValidatePlaceRef reports the first failed constraint, or nil when the
// reference is canonical and resolvable.
func (s *Service) ValidatePlaceRef(value string) error {
	_, err := s.ParsePlaceRef(value)
	return err
}

// FormatPlaceRef renders the canonical string form. Round-trips are
// lossless for canonical input.
func FormatPlaceRef(ref interfaces.PlaceRef) string {
	var sb strings.Builder
	sb.WriteString(ref.AnchorID)
	sb.WriteByte(':')
	sb.WriteString(ref.Space)
	sb.WriteByte(':')
	sb.WriteString(FormatLocID(ref.Loc))
	if ref.Depth >= 0 {
		fmt.Fprintf(&sb, ":D%d", ref.Depth)
	}
	if ref.Instance >= 0 {
		fmt.Fprintf(&sb, ":I%d", ref.Instance)
	}
	return sb.String()
}

func isAnchorToken(token string) bool {
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c != '_' && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return len(token) > 0
}
