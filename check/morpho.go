package check

import (
	"slices"
	"strings"

	"github.com/revelaction/udcheck/langdata"
	sent "github.com/revelaction/udcheck/sentence"
)

// featureSeen fires once a word carrying any feature is met. Missing required
// features are only errors after that.
const featureSeen = "feature-seen"

func featsUniversal(ctx *Context) {
	n := ctx.Node
	if n.Kind == sent.Range || n.Feats() == sent.Empty {
		return
	}
	u := langdata.Universal()
	spec := ctx.SpecFor(n)

	for _, a := range sent.ParseAttrs(n.Feats()) {
		uf, universal := u.Feature(a.Name)
		lf, declared := spec.Feature(a.Name)
		if !universal && !declared {
			ctx.Errorf("feature-unknown", "Unknown feature '%s'.", a.Name)
			continue
		}
		for _, v := range a.Values() {
			if !u.FeatureValue(a.Name, v) && !spec.FeatureValue(a.Name, v) {
				ctx.Errorf("feature-value-unknown", "Unknown value '%s' of feature '%s'.", v, a.Name)
			}
		}

		restrict := uf.UPOS
		if declared && len(lf.UPOS) > 0 {
			restrict = lf.UPOS
		}
		if tag := n.UPOS(); len(restrict) > 0 && !slices.Contains(restrict, tag) {
			ctx.Errorf("feature-upos-not-permitted", "Feature '%s' is not permitted with UPOS '%s'.", a.Name, tag)
		}
	}
}

func featsLang(ctx *Context) {
	n := ctx.Node
	if n.Kind == sent.Range || !ctx.LanguageSpecific(n) {
		return
	}
	spec := ctx.SpecFor(n)
	attrs := sent.ParseAttrs(n.Feats())
	if len(attrs) > 0 {
		ctx.State.Trigger(featureSeen)
	}
	if len(spec.Features) == 0 {
		return
	}

	have := map[string]bool{}
	for _, a := range attrs {
		have[a.Name] = true
		if _, ok := spec.Feature(a.Name); !ok {
			ctx.Errorf("feature-not-permitted", "Feature '%s' is not permitted in language '%s'.", a.Name, spec.Lang)
			continue
		}
		for _, v := range a.Values() {
			if !spec.FeatureValue(a.Name, v) {
				ctx.Errorf("feature-value-not-permitted", "Value '%s' of feature '%s' is not permitted in language '%s'.", v, a.Name, spec.Lang)
			}
		}
	}

	if n.Kind != sent.Word {
		return
	}
	for _, req := range spec.Required(n.UPOS()) {
		if !have[req] {
			ctx.Defer(featureSeen, "feature-required", "Feature '%s' is required for UPOS '%s' in language '%s'.", req, n.UPOS(), spec.Lang)
		}
	}
}

func deprelLang(ctx *Context) {
	n := ctx.Node
	if n.Kind != sent.Word || !ctx.LanguageSpecific(n) {
		return
	}
	spec := ctx.SpecFor(n)
	if len(spec.Deprels) == 0 {
		return
	}
	if !spec.HasDeprel(n.Deprel()) {
		ctx.Errorf("deprel-not-permitted", "Relation '%s' is not permitted in language '%s'.", n.Deprel(), spec.Lang)
	}
}

func wordWithSpace(ctx *Context) {
	n := ctx.Node
	if n.Kind == sent.Range || !ctx.LanguageSpecific(n) {
		return
	}
	spec := ctx.SpecFor(n)
	for _, col := range []int{sent.FORM, sent.LEMMA} {
		v := n.Col(col)
		if !strings.Contains(v, " ") || spec.SpaceAllowed(v) {
			continue
		}
		ctx.Errorf("invalid-word-with-space", "'%s' in column %s is not on the list of exceptions allowed to contain whitespace.", v, sent.ColumnNames[col])
	}
}

// codeSwitch warns about MISC Lang codes that have no data.
func codeSwitch(ctx *Context) {
	n := ctx.Node
	lang := ctx.LangOf(n)
	if lang == ctx.Config.Lang || lang == langdata.LangUD || ctx.langs == nil {
		return
	}
	if _, err := ctx.langs.Spec(lang); err != nil {
		if !langdata.IsUnknown(err) {
			ctx.Fail(err)
			return
		}
		ctx.Warnf("unknown-code-switch-lang", "No language data for code-switched language '%s'; validating against '%s'.", lang, ctx.Config.Lang)
	}
}

func auxCopLemma(ctx *Context) {
	n := ctx.Node
	if !ctx.LanguageSpecific(n) {
		return
	}
	spec := ctx.SpecFor(n)
	lemma := n.Lemma()

	if n.UPOS() == "AUX" && spec.HasAuxiliaries() && !spec.IsAuxiliary(lemma) {
		ctx.Errorf("aux-lemma", "'%s' is not an auxiliary in language '%s'.", lemma, spec.Lang)
	}
	if n.UDeprel() == "cop" && spec.HasCopulas() && !spec.IsCopula(lemma) {
		ctx.Errorf("cop-lemma", "'%s' is not a copula in language '%s'.", lemma, spec.Lang)
	}
}
