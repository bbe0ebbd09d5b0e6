// Package rule declares the external authorities the router core consults
// but never implements itself: the clearance/constraint resolver supplied
// by the host application, and the sizes configuration the placers read.
// Per §1, the rule-resolver and net database are external collaborators;
// this package only names the contract.
package rule
