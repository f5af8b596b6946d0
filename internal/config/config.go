// Package config holds the settings shared by the demo drivers. Values come
// from flags, whose defaults are taken from IK_* environment variables and an
// optional .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"

	"honnef.co/go/ik"
)

// Mode selects the solver every chain in a scene uses.
type Mode string

const (
	// ModeFabrik pins each tail to the anchor and reaches for the target.
	ModeFabrik Mode = "fabrik"
	// ModeFollow drags each chain behind the target with a bounded bend.
	ModeFollow Mode = "follow"
)

var ErrMode = errors.New("config: unknown mode")

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeFabrik, ModeFollow:
		return m, nil
	default:
		return "", fmt.Errorf("%w %q (want %q or %q)", ErrMode, s, ModeFabrik, ModeFollow)
	}
}

// ChainSpec describes one chain of a scene.
type ChainSpec struct {
	Joints   int
	LinkSize float64
	// AngleConstraint is the maximum bend between links in radians. It only
	// applies in follow mode.
	AngleConstraint float64
}

var ErrChainSpec = errors.New("config: malformed chain spec")

// ParseChains parses a comma separated list of joints:linkSize[:maxBendDegrees]
// triples. A missing bend leaves the chain unconstrained.
func ParseChains(s string) ([]ChainSpec, error) {
	var out []ChainSpec
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		parts := strings.Split(field, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("%w %q: want joints:linkSize[:maxBendDegrees]", ErrChainSpec, field)
		}
		joints, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w %q: joints: %w", ErrChainSpec, field, err)
		}
		linkSize, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: link size: %w", ErrChainSpec, field, err)
		}
		spec := ChainSpec{Joints: joints, LinkSize: linkSize, AngleConstraint: ik.Unconstrained}
		if len(parts) == 3 {
			deg, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w %q: bend: %w", ErrChainSpec, field, err)
			}
			spec.AngleConstraint = deg * math.Pi / 180
		}
		out = append(out, spec)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no chains in %q", ErrChainSpec, s)
	}
	return out, nil
}

// ParseColor parses #rgb, #rrggbb and #rrggbbaa. The alpha channel is
// ignored.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if len(s) == 9 && s[0] == '#' {
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("config: color %q: %w", s, err)
	}
	return c, nil
}

type Config struct {
	Width  int
	Height int
	TPS    int
	Mode   Mode
	Chains []ChainSpec

	Background colorful.Color
	LinkColor  colorful.Color
	JointColor colorful.Color

	LinkWidth    float64
	JointRadius  float64
	AnchorRadius float64

	Headless bool
	// Ticks stops a headless run after this many frames. 0 runs until
	// interrupted.
	Ticks int
	// Orbit is the radius of the circle the target follows in headless
	// mode.
	Orbit float64
}

const (
	DefaultChains     = "8:30:45,10:25:60,12:20:90"
	DefaultBackground = "#0e0e0e"
	DefaultLinkColor  = "#ffffff"
	DefaultJointColor = "#16703d"
)

// Load reads an optional .env file into the environment and then parses args
// with Parse.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return Parse(args)
}

// Parse builds a Config from args. Every flag's default comes from its IK_*
// environment variable, falling back to the built-in default.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("ik", flag.ContinueOnError)

	var (
		width        = fs.Int("width", getEnvInt("IK_WIDTH", 800), "World width")
		height       = fs.Int("height", getEnvInt("IK_HEIGHT", 600), "World height")
		tps          = fs.Int("tps", getEnvInt("IK_TPS", 60), "Frames per second")
		mode         = fs.String("mode", getEnvOrDefault("IK_MODE", string(ModeFabrik)), "Solver: fabrik or follow")
		chains       = fs.String("chains", getEnvOrDefault("IK_CHAINS", DefaultChains), "Chains as joints:linkSize[:maxBendDegrees], comma separated")
		background   = fs.String("background", getEnvOrDefault("IK_BACKGROUND", DefaultBackground), "Background color")
		linkColor    = fs.String("link-color", getEnvOrDefault("IK_LINK_COLOR", DefaultLinkColor), "Link color")
		jointColor   = fs.String("joint-color", getEnvOrDefault("IK_JOINT_COLOR", DefaultJointColor), "Joint color")
		linkWidth    = fs.Float64("link-width", getEnvFloat("IK_LINK_WIDTH", 8), "Link stroke width")
		jointRadius  = fs.Float64("joint-radius", getEnvFloat("IK_JOINT_RADIUS", 16), "Joint disc radius")
		anchorRadius = fs.Float64("anchor-radius", getEnvFloat("IK_ANCHOR_RADIUS", 8), "Anchor disc radius")
		headless     = fs.Bool("headless", getEnvOrDefault("IK_HEADLESS", "") == "true", "Run without a window")
		ticks        = fs.Int("ticks", getEnvInt("IK_TICKS", 0), "Stop a headless run after N frames (0 = run until interrupted)")
		orbit        = fs.Float64("orbit", getEnvFloat("IK_ORBIT", 150), "Radius of the headless target orbit")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		Width:        *width,
		Height:       *height,
		TPS:          *tps,
		LinkWidth:    *linkWidth,
		JointRadius:  *jointRadius,
		AnchorRadius: *anchorRadius,
		Headless:     *headless,
		Ticks:        *ticks,
		Orbit:        *orbit,
	}

	var err error
	if cfg.Mode, err = ParseMode(*mode); err != nil {
		return nil, err
	}
	if cfg.Chains, err = ParseChains(*chains); err != nil {
		return nil, err
	}
	if cfg.Background, err = ParseColor(*background); err != nil {
		return nil, fmt.Errorf("-background: %w", err)
	}
	if cfg.LinkColor, err = ParseColor(*linkColor); err != nil {
		return nil, fmt.Errorf("-link-color: %w", err)
	}
	if cfg.JointColor, err = ParseColor(*jointColor); err != nil {
		return nil, fmt.Errorf("-joint-color: %w", err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("config: world size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TPS <= 0 {
		return nil, fmt.Errorf("config: tps must be positive, got %d", cfg.TPS)
	}
	if cfg.Ticks < 0 {
		return nil, fmt.Errorf("config: ticks must not be negative, got %d", cfg.Ticks)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, s, err)
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, s, err)
		return defaultValue
	}
	return v
}
