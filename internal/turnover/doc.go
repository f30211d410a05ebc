// Package turnover extracts fumbles and interceptions from play descriptions.
//
// A play description is split into sentence fragments; fragments mentioning a
// fumble or an interception are classified, the committing and recovering
// players are cut out of the text around fixed anchor phrases, and each player
// is attributed to the home or away team by exclusive roster membership.
//
// Nothing here fails: anything that cannot be resolved is left absent on the
// returned Record and described by a Diagnostic.
package turnover
