// Package phytocure provides a command-line plant lookup tool. It scrapes
// the KNApSAcK compound database and the PFAF plant database for a
// botanical name and maps the reported compounds to diseases they are
// traditionally associated with.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or data source (e.g., knapsack/, pfaf/,
// sqlite/, http/).
package phytocure
