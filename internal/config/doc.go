// Package config loads and watches the reignstats configuration file.
//
// Top-level types:
//   - Config{Source, Output, Log}: full config tree parsed from YAML
//   - SourceConfig: type (http|file), url, path, timeout, auth, tls
//   - AuthConfig: mode (apikey|bearer|basic|none), header, key_env,
//     token_env, username, password_env; Key(), Token() and Password()
//     resolve secrets from environment variables
//   - OutputConfig: format (text|json|prometheus), color (auto|always|never)
//   - LogConfig: level (debug|info|warn|error)
//
// Load(path) applies defaults (the public monarchs dataset, 30s timeout, text
// output, info logging), overlays the YAML file when path is non-empty, then
// validates enums and required fields.
//
// Watch(ctx, path, onChange) uses fsnotify to detect file changes and calls
// onChange with the newly parsed Config.
package config
