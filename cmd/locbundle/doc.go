// Command locbundle reconciles localization source files against the
// translation corpus and packages the results as a zip of JSON bundles.
//
// Subcommands cover the HTTP server (serve), schema migrations (migrate),
// offline reconciliation (reconcile), bulk import (import) and corpus
// inspection (entries list).
package main
