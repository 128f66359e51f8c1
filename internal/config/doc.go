// Package config loads fontls settings from config.yaml via Viper.
//
// The config file is searched in the current directory and in
// <XDG_CONFIG_HOME>/fontls/. Environment variables prefixed with FONTLS_
// override file values. All keys are optional:
//
//	default_scopes:
//	  - user
//	  - system
//	default_patterns:
//	  - "*"
//	format: table
package config
