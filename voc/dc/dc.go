// Package dc contains constants of the Dublin Core Metadata Element Set, Version 1.1.
package dc

import "github.com/cayleygraph/quad/voc"

func init() {
	voc.Register(voc.Namespace{Full: NS, Prefix: Prefix})
}

const (
	NS     = `http://purl.org/dc/elements/1.1/`
	Prefix = `dc:`
)

const (
	// An entity responsible for making contributions to the resource.
	Contributor = Prefix + `contributor`
	// The spatial or temporal topic of the resource.
	Coverage = Prefix + `coverage`
	// An entity primarily responsible for making the resource.
	Creator = Prefix + `creator`
	// A point or period of time associated with an event in the lifecycle of the resource.
	Date = Prefix + `date`
	// An account of the resource.
	Description = Prefix + `description`
	// The file format, physical medium, or dimensions of the resource.
	Format = Prefix + `format`
	// An unambiguous reference to the resource within a given context.
	Identifier = Prefix + `identifier`
	// A language of the resource.
	Language = Prefix + `language`
	// An entity responsible for making the resource available.
	Publisher = Prefix + `publisher`
	// A related resource.
	Relation = Prefix + `relation`
	// Information about rights held in and over the resource.
	Rights = Prefix + `rights`
	// A related resource from which the described resource is derived.
	Source = Prefix + `source`
	// The topic of the resource.
	Subject = Prefix + `subject`
	// A name given to the resource.
	Title = Prefix + `title`
	// The nature or genre of the resource.
	Type = Prefix + `type`
)
