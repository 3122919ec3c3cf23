// Package enum builds closed sets of immutable, singleton enumeration
// members from declarative member lists.
//
// A declaration list mixes explicitly valued entries with lightweight
// auto-numbered ones; entries resolving to an already claimed value
// collapse into aliases of the earlier member. An optional constructor
// contract attaches extension fields to each member, and an optional
// hook runs over the finished member set before the type is sealed.
// Once sealed, a type and its members are immutable and safe for
// concurrent reads without locking.
//
// Sealed member-bearing types cannot gain members through derivation;
// open (memberless) bases exist to share a constructor and hook across
// independently declared member sets.
package enum
