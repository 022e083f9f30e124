// Package unoconf assembles the configuration consumed by the UnoCSS
// utility-class generator for Go/templ projects.
//
// A Config is built once from static defaults plus one read of a reset
// stylesheet. The stylesheet text is registered verbatim as a preflight, so
// it is injected ahead of the generated utility classes.
//
// # Building
//
//	cfg, err := unoconf.Build(unoconf.DefaultOptions())
//	if err != nil {
//		// reset stylesheet missing or unreadable; startup cannot continue
//	}
//	for _, p := range cfg.Preflights() {
//		css := p.GetCSS()
//		...
//	}
//
// The presets are always wind3 followed by attributify. The consumer resolves
// utility classes in that order.
//
// # Rendering
//
// The external tool reads its configuration as a uno.config.ts module or as
// JSON:
//
//	unoconf.WriteOutput(os.Stdout, cfg, unoconf.OutputTypeScript)
//
// # CLI Tool
//
// The unoconf command wraps the library with layered configuration
// (flags > UNOCONF_* env > .unoconf.yaml > defaults):
//
//	unoconf generate -o uno.config.ts
//	unoconf check
//	unoconf files
package unoconf
