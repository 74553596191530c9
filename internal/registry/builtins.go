package registry

import (
	"sort"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/stringx"

	"github.com/msto63/textkit/internal/settings"
)

// SettingsSource supplies the settings an operation reads at call time.
// *settings.Store implements it.
type SettingsSource interface {
	Get() settings.Settings
}

type staticSettings settings.Settings

func (s staticSettings) Get() settings.Settings { return settings.Settings(s) }

// Static returns a SettingsSource that always yields s
func Static(s settings.Settings) SettingsSource {
	return staticSettings(s)
}

// RegisterBuiltins registers the text engine operations. Each call reads
// the current settings from src; args override them per call.
func RegisterBuiltins(r *Registry, src SettingsSource) error {
	for _, def := range builtins(src) {
		if err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}

func builtins(src SettingsSource) []Definition {
	return []Definition{
		{Name: "wrap", Summary: "Wrap text (width, word_wrap, indent, indent_at)", Operation: func(in string, args Args) (string, error) {
			opts, err := wrapOptions(src.Get(), args)
			if err != nil {
				return "", err
			}
			return stringx.Wrap(in, opts)
		}},
		{Name: "wrap-block", Summary: "Wrap text so the indent counts toward the width", Operation: func(in string, args Args) (string, error) {
			opts, err := wrapOptions(src.Get(), args)
			if err != nil {
				return "", err
			}
			return stringx.WrapBlock(in, opts)
		}},
		{Name: "truncate", Summary: "Shorten text from the end (length, ellipsis, exact, html)", Operation: func(in string, args Args) (string, error) {
			length, opts, err := truncateOptions(src.Get(), args)
			if err != nil {
				return "", err
			}
			return stringx.Truncate(in, length, opts)
		}},
		{Name: "tail", Summary: "Shorten text from the front (length, ellipsis, exact)", Operation: func(in string, args Args) (string, error) {
			length, opts, err := truncateOptions(src.Get(), args)
			if err != nil {
				return "", err
			}
			return stringx.Tail(in, length, opts)
		}},
		{Name: "excerpt", Summary: "Context around a phrase (phrase, radius, ellipsis)", Operation: func(in string, args Args) (string, error) {
			s := src.Get()
			radius, err := args.Int("radius", s.Excerpt.Radius)
			if err != nil {
				return "", err
			}
			return stringx.Excerpt(in, args.String("phrase", ""), radius, args.String("ellipsis", s.Excerpt.Ellipsis))
		}},
		{Name: "highlight", Summary: "Mark phrases (phrases, format, html)", Operation: func(in string, args Args) (string, error) {
			s := src.Get()
			opts := s.HighlightOptions()
			opts.Format = args.String("format", opts.Format)
			html, err := args.Bool("html", opts.HTML)
			if err != nil {
				return "", err
			}
			opts.HTML = html
			return stringx.Highlight(in, args.List("phrases"), opts), nil
		}},
		{Name: "insert", Summary: "Fill :placeholders in the input from args", Operation: func(in string, args Args) (string, error) {
			return stringx.Insert(in, map[string]string(args), src.Get().PlaceholderOptions())
		}},
		{Name: "clean-insert", Summary: "Remove leftover placeholders (method)", Operation: func(in string, args Args) (string, error) {
			opts := src.Get().PlaceholderOptions()
			if opts.Clean == nil {
				opts.Clean = &stringx.CleanOptions{Method: stringx.CleanText}
			}
			if args.Has("method") {
				opts.Clean.Method = stringx.CleanMethod(args.String("method", ""))
			}
			opts.Clean.Replacement = args.String("replacement", opts.Clean.Replacement)
			return stringx.CleanInsert(in, opts)
		}},
		{Name: "limit", Summary: "Limit display width (limit, end)", Operation: func(in string, args Args) (string, error) {
			limit, err := args.Int("limit", src.Get().Truncate.Length)
			if err != nil {
				return "", err
			}
			return stringx.Limit(in, limit, args.String("end", stringx.DefaultEllipsis)), nil
		}},
		{Name: "words", Summary: "Keep the first words (count, end)", Operation: func(in string, args Args) (string, error) {
			count, err := args.Int("count", 100)
			if err != nil {
				return "", err
			}
			return stringx.Words(in, count, args.String("end", stringx.DefaultEllipsis)), nil
		}},
		{Name: "slug", Summary: "URL slug (separator)", Operation: func(in string, args Args) (string, error) {
			return stringx.Slug(in, args.String("separator", "-")), nil
		}},
		{Name: "snake", Summary: "snake_case", Pure: true, Operation: pure(stringx.ToSnakeCase)},
		{Name: "kebab", Summary: "kebab-case", Pure: true, Operation: pure(stringx.ToKebabCase)},
		{Name: "camel", Summary: "camelCase", Pure: true, Operation: pure(stringx.ToCamelCase)},
		{Name: "pascal", Summary: "PascalCase", Pure: true, Operation: pure(stringx.ToPascalCase)},
		{Name: "title", Summary: "Title Case", Pure: true, Operation: pure(stringx.ToTitleCase)},
		{Name: "strip-tags", Summary: "Remove markup tags", Pure: true, Operation: pure(stringx.StripTags)},
		{Name: "strip-links", Summary: "Remove <a> tags, keep their text", Pure: true, Operation: pure(stringx.StripLinks)},
		{Name: "reverse", Summary: "Reverse by code point", Pure: true, Operation: pure(stringx.Reverse)},
	}
}

func pure(fn func(string) string) Operation {
	return func(in string, _ Args) (string, error) {
		return fn(in), nil
	}
}

func wrapOptions(s settings.Settings, args Args) (stringx.WrapOptions, error) {
	opts := s.WrapOptions()
	var err error
	if opts.Width, err = args.Int("width", opts.Width); err != nil {
		return opts, err
	}
	if opts.WordWrap, err = args.Bool("word_wrap", opts.WordWrap); err != nil {
		return opts, err
	}
	opts.Indent = args.String("indent", opts.Indent)
	if opts.IndentAt, err = args.Int("indent_at", opts.IndentAt); err != nil {
		return opts, err
	}
	return opts, nil
}

func truncateOptions(s settings.Settings, args Args) (int, stringx.TruncateOptions, error) {
	opts := s.TruncateOptions()
	length, err := args.Int("length", s.Truncate.Length)
	if err != nil {
		return 0, opts, err
	}
	opts.Ellipsis = args.String("ellipsis", opts.Ellipsis)
	if opts.Exact, err = args.Bool("exact", opts.Exact); err != nil {
		return 0, opts, err
	}
	if opts.HTML, err = args.Bool("html", opts.HTML); err != nil {
		return 0, opts, err
	}
	return length, opts, nil
}

// RegisterTemplate adds a macro that fills template with stringx.Insert.
// The input text is bound to the placeholder "input"; args fill the rest.
func (r *Registry) RegisterTemplate(name, template string, src SettingsSource) error {
	return r.addTemplate(name, template, src, false)
}

func (r *Registry) addTemplate(name, template string, src SettingsSource, replace bool) error {
	if stringx.IsBlank(template) {
		return errors.NewErrorBuilder(errors.ModuleRegistry).
			Operation("register_template").
			Messagef("macro %s has an empty template", name).
			Code(tkerror.CodeInvalidTemplate).
			Detail("name", name).
			Build()
	}

	op := func(input string, args Args) (string, error) {
		data := make(map[string]string, len(args)+1)
		for k, v := range args {
			data[k] = v
		}
		data["input"] = input
		return stringx.Insert(template, data, src.Get().PlaceholderOptions())
	}
	return r.add(&Definition{
		Name:      name,
		Summary:   "macro: " + stringx.Limit(template, 40, stringx.DefaultEllipsis),
		Kind:      KindMacro,
		Template:  template,
		Operation: op,
	}, replace)
}

// SyncTemplates makes the registered template macros match macros: new
// ones are added, changed ones replaced and missing ones removed. A macro
// named like a built-in is skipped and reported; the rest are still applied.
func (r *Registry) SyncTemplates(macros map[string]string, src SettingsSource) error {
	wanted := make(map[string]string, len(macros))
	for name, template := range macros {
		wanted[normalize(name)] = template
	}

	for _, def := range r.Definitions() {
		if def.Kind != KindMacro || def.Template == "" {
			continue
		}
		if _, keep := wanted[def.Name]; !keep {
			if err := r.Unregister(def.Name); err != nil {
				return err
			}
		}
	}

	names := make([]string, 0, len(wanted))
	for name := range wanted {
		names = append(names, name)
	}
	sort.Strings(names)

	var firstErr error
	for _, name := range names {
		if def, err := r.Get(name); err == nil && def.Name == name && def.Kind == KindBuiltin {
			err := errors.Duplicate(errors.ModuleRegistry, "register_template", name).
				WithDetail("kind", KindBuiltin.String())
			r.logger.WarnWithErr("macro shadows a built-in operation, skipped", err, log.Fields{"name": name})
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := r.addTemplate(name, wanted[name], src, true); err != nil {
			r.logger.WarnWithErr("macro rejected", err, log.Fields{"name": name})
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
