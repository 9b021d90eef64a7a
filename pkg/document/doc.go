// Package document reads status-line documents from YAML or TOML files.
//
// A node holds exactly one content key and any number of style keys:
//
//	concat:
//	  - str: "CPU "
//	  - fg: "#00FF00"
//	    pad: 1
//	    str: "42%"
//	  - click: {button: right, command: htop}
//	    no_separator: true
//	    raw: "<b>!</b>"
//
// Content keys are str, raw, concat and child. Style keys wrap the content
// from the outside in, in the order click, no_separator, align, bg, fg, pad.
package document
