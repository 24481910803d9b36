package math

import "github.com/fogleman/ease"

// EasingStyle selects the shape of an interpolation curve.
type EasingStyle string

const (
	EasingLinear      EasingStyle = "Linear"
	EasingSine        EasingStyle = "Sine"
	EasingBack        EasingStyle = "Back"
	EasingQuad        EasingStyle = "Quad"
	EasingQuart       EasingStyle = "Quart"
	EasingQuint       EasingStyle = "Quint"
	EasingBounce      EasingStyle = "Bounce"
	EasingElastic     EasingStyle = "Elastic"
	EasingExponential EasingStyle = "Exponential"
	EasingCircular    EasingStyle = "Circular"
	EasingCubic       EasingStyle = "Cubic"
)

// EasingDirection selects which end of the curve the style applies to.
type EasingDirection string

const (
	EasingIn    EasingDirection = "In"
	EasingOut   EasingDirection = "Out"
	EasingInOut EasingDirection = "InOut"
)

type easingCurves struct {
	in, out, inOut func(float64) float64
}

var easings = map[EasingStyle]easingCurves{
	EasingLinear:      {ease.Linear, ease.Linear, ease.Linear},
	EasingSine:        {ease.InSine, ease.OutSine, ease.InOutSine},
	EasingBack:        {ease.InBack, ease.OutBack, ease.InOutBack},
	EasingQuad:        {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	EasingQuart:       {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	EasingQuint:       {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	EasingBounce:      {ease.InBounce, ease.OutBounce, ease.InOutBounce},
	EasingElastic:     {ease.InElastic, ease.OutElastic, ease.InOutElastic},
	EasingExponential: {ease.InExpo, ease.OutExpo, ease.InOutExpo},
	EasingCircular:    {ease.InCirc, ease.OutCirc, ease.InOutCirc},
	EasingCubic:       {ease.InCubic, ease.OutCubic, ease.InOutCubic},
}

// Ease maps linear progress t in [0, 1] through the requested curve.
// Unknown styles fall back to Linear, unknown directions to Out.
func Ease(style EasingStyle, direction EasingDirection, t float64) float64 {
	t = Clamp(t, 0, 1)
	curves, ok := easings[style]
	if !ok {
		return t
	}
	switch direction {
	case EasingIn:
		return curves.in(t)
	case EasingInOut:
		return curves.inOut(t)
	default:
		return curves.out(t)
	}
}

// IsEasingStyle reports whether style names a known curve.
func IsEasingStyle(style EasingStyle) bool {
	_, ok := easings[style]
	return ok
}
