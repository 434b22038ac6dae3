// Package config provides configuration loading, merging, and validation
// facilities for the carcert client.
//
// Configuration is assembled from multiple sources. For each field the first
// source that sets it wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults (Fabric test-network layout)
//
// The main entry points are [RegisterFlags], which declares the flags on a
// cobra/pflag flag set, and [GetClientConfig], which returns the validated
// client view.
package config
