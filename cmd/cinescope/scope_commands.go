package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/cinescope/internal/imaging"
	"github.com/ironsheep/cinescope/internal/scope"
)

type analyzeOutput struct {
	*scope.Report
	AspectRatio string          `json:"aspect_ratio"`
	Region      *imaging.Region `json:"region,omitempty"`
}

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var regionFlag string

	cmd := &cobra.Command{
		Use:   "analyze <image>",
		Short: "Print the histogram and vectorscope of an image as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := ctx.loadImage(args[0])
			if err != nil {
				return err
			}

			var region *imaging.Region
			if strings.TrimSpace(regionFlag) != "" {
				b := img.Bounds()
				r, err := parseRegion(regionFlag, b.Dx(), b.Dy())
				if err != nil {
					return err
				}
				region = &r
				if img, err = imaging.CropRegion(img, r); err != nil {
					return err
				}
			}

			frame, err := imaging.LoadFrame(img)
			if err != nil {
				return err
			}
			return writeJSON(cmd, analyzeOutput{
				Report:      scope.Analyze(frame),
				AspectRatio: imaging.FormatAspectRatio(frame.Width, frame.Height),
				Region:      region,
			})
		},
	}

	cmd.Flags().StringVar(&regionFlag, "region", "", "Analyze x1,y1,x2,y2 or a named region ("+strings.Join(imaging.RegionNames, ", ")+")")
	return cmd
}

// parseRegion accepts "x1,y1,x2,y2" or a region name.
func parseRegion(value string, width, height int) (imaging.Region, error) {
	value = strings.TrimSpace(value)
	if !strings.Contains(value, ",") {
		return imaging.NamedRegion(width, height, value)
	}

	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return imaging.Region{}, fmt.Errorf("region %q: want x1,y1,x2,y2", value)
	}
	coords := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return imaging.Region{}, fmt.Errorf("region %q: %w", value, err)
		}
		coords[i] = n
	}
	return imaging.Region{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}, nil
}

func newFalseColorCommand(ctx *commandContext) *cobra.Command {
	var profileFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "false-color <image>",
		Short: "Write a false-color exposure overlay of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			profiles, err := ctx.profileSet()
			if err != nil {
				return err
			}
			name := strings.TrimSpace(profileFlag)
			if name == "" {
				name = cfg.Analysis.DefaultProfile
			}

			img, err := ctx.loadImage(args[0])
			if err != nil {
				return err
			}
			frame, err := imaging.LoadFrame(img)
			if err != nil {
				return err
			}

			out := profiles.FalseColor(frame, name)
			if err := imaging.Save(out.Image(), outputFlag); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if p, ok := profiles.Lookup(name); !ok || p.PassThrough() {
				fmt.Fprintf(w, "Profile %s has no exposure bands; image copied unchanged\n", name)
			}
			fmt.Fprintf(w, "Wrote %s false color (%dx%d) to %s\n", name, out.Width, out.Height, outputFlag)
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileFlag, "profile", "p", "", "Profile name (defaults to analysis.default_profile)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination image; the extension selects the format")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

type probeOutput struct {
	scope.PixelSample
	Hex string           `json:"hex"`
	HSL imaging.HSLColor `json:"hsl"`
}

func newProbeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <image> <x> <y>",
		Short: "Print the color and vectorscope position of one pixel as JSON",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}

			img, err := ctx.loadImage(args[0])
			if err != nil {
				return err
			}
			frame, err := imaging.LoadFrame(img)
			if err != nil {
				return err
			}
			sample, err := scope.Probe(frame, x, y)
			if err != nil {
				return err
			}

			desc := imaging.DescribeColor(sample.Color)
			return writeJSON(cmd, probeOutput{PixelSample: sample, Hex: desc.Hex, HSL: desc.HSL})
		},
	}
}

func newFocusPeakingCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var thresholdFlag float64
	var colorFlag string

	cmd := &cobra.Command{
		Use:   "focus-peaking <image>",
		Short: "Write an image with in-focus edges highlighted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			highlight, err := imaging.ParseHexColor(colorFlag)
			if err != nil {
				return err
			}
			img, err := ctx.loadImage(args[0])
			if err != nil {
				return err
			}
			frame, err := imaging.LoadFrame(img)
			if err != nil {
				return err
			}
			out, err := scope.FocusPeaking(frame, thresholdFlag, highlight)
			if err != nil {
				return err
			}
			if err := imaging.Save(out.Image(), outputFlag); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote focus peaking (%dx%d) to %s\n", out.Width, out.Height, outputFlag)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Destination image; the extension selects the format")
	cmd.Flags().Float64Var(&thresholdFlag, "threshold", scope.DefaultPeakingThreshold, "Edge strength in 8-bit code values")
	cmd.Flags().StringVar(&colorFlag, "color", imaging.DescribeColor(scope.PeakingColor).Hex, "Highlight color")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
