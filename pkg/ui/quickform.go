package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/texel-architect/texel_architect/pkg/density"
	"github.com/texel-architect/texel_architect/pkg/model"
)

// customPreset is the preset-select value meaning "type a density".
const customPreset = "__custom__"

// QuickFormResult receives the values bound to a quick form.
type QuickFormResult struct {
	Mode          string
	ObjectSize    string
	Resolution    float64
	Preset        string
	TargetDensity string

	presets []density.Preset
}

// NewQuickForm builds a one-shot huh form seeded from calc. Apply the
// returned result to a calculator after the form completes.
func NewQuickForm(calc *model.Calculator, presets []density.Preset) (*huh.Form, *QuickFormResult) {
	in := calc.Inputs()
	res := &QuickFormResult{
		Mode:          string(calc.Mode()),
		ObjectSize:    formatNumber(in.ObjectSizeCm),
		Resolution:    in.TextureSizePx,
		Preset:        customPreset,
		TargetDensity: formatNumber(in.TargetDensity),
		presets:       presets,
	}
	if density.ResolutionIndex(res.Resolution) < 0 {
		res.Resolution = density.DefaultResolution
	}

	resolutionOpts := make([]huh.Option[float64], 0, len(density.Resolutions))
	for _, px := range density.Resolutions {
		resolutionOpts = append(resolutionOpts, huh.NewOption(density.FormatResolution(px), px))
	}

	presetOpts := make([]huh.Option[string], 0, len(presets)+1)
	for _, p := range presets {
		label := fmt.Sprintf("%s (%s px/cm)", p.Name, density.FormatDensity(p.Density))
		presetOpts = append(presetOpts, huh.NewOption(label, p.Name))
	}
	presetOpts = append(presetOpts, huh.NewOption("Custom density", customPreset))

	isDensity := func() bool { return res.Mode == string(model.DensityMode) }

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What do you want to calculate?").
				Options(
					huh.NewOption(model.DensityMode.Title(), string(model.DensityMode)),
					huh.NewOption(model.SizeMode.Title(), string(model.SizeMode)),
				).
				Value(&res.Mode),
			huh.NewInput().
				Title("Object Size (cm)").
				Description("1m = 100cm").
				Value(&res.ObjectSize),
		),
		huh.NewGroup(
			huh.NewSelect[float64]().
				Title("Texture Resolution").
				Options(resolutionOpts...).
				Value(&res.Resolution),
		).WithHideFunc(func() bool { return !isDensity() }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Preset").
				Options(presetOpts...).
				Value(&res.Preset),
		).WithHideFunc(isDensity),
		huh.NewGroup(
			huh.NewInput().
				Title("Target Density (px/cm)").
				Value(&res.TargetDensity),
		).WithHideFunc(func() bool { return isDensity() || res.Preset != customPreset }),
	).WithTheme(huh.ThemeDracula())

	return form, res
}

// Apply pushes the form values into calc. Text is coerced the same way the
// TUI coerces it.
func (r *QuickFormResult) Apply(calc *model.Calculator) {
	mode, err := model.ParseMode(r.Mode)
	if err != nil {
		mode = model.DensityMode
	}
	calc.SetMode(mode)
	calc.SetObjectSizeText(r.ObjectSize)
	calc.SetTextureSize(r.Resolution)

	if mode != model.SizeMode {
		return
	}
	for _, p := range r.presets {
		if p.Name == r.Preset {
			calc.ApplyPreset(p)
			return
		}
	}
	calc.SetTargetDensityText(r.TargetDensity)
}

// RunQuickForm runs the form on the terminal and applies the answers.
func RunQuickForm(calc *model.Calculator, presets []density.Preset) error {
	form, res := NewQuickForm(calc, presets)
	if err := form.Run(); err != nil {
		return fmt.Errorf("quick form: %w", err)
	}
	res.Apply(calc)
	return nil
}
