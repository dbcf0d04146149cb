package registry

// Seed plumbing (§4.6): seedfix -> seedprep -> effective seed -> hashfn.
//
//	s0 = user_seed
//	if d.SeedFix != nil and d.ImplFlags lacks ImplSeedWithHint:
//	    s0 = d.SeedFix(d, s0)
//	if d.SeedPrep != nil:
//	    s1 := d.SeedPrep(s0)
//	    effective = s1, or s0 if s1 == 0
//	else:
//	    effective = s0
//
// EffectiveSeed runs this pipeline and returns the Seed to pass to
// d.HashFnNative/HashFnBSwap.
func EffectiveSeed(d *Descriptor, userSeed uint64) Seed {
	s0 := userSeed
	if d.SeedFix != nil && !d.ImplFlags.Has(ImplSeedWithHint) {
		s0 = d.SeedFix(d, s0)
	}
	if d.SeedPrep != nil {
		if s1 := d.SeedPrep(s0); s1 != 0 {
			return s1
		}
	}
	return Seed(s0)
}

// ExcludeBadSeeds is a SeedFixFn usable by any descriptor that declares a
// BadSeeds set: it nudges a seed forward by one until it is no longer in
// the set. Idempotent, since a seed not in the set is returned unchanged,
// and seeds are walked monotonically away from every declared bad value.
// Ported from the source's common `excludeBadseeds` helper used by
// wyhash_32, poly_mersenne deg2/deg3, rust_rapidhash, etc.
func ExcludeBadSeeds(d *Descriptor, seed uint64) uint64 {
	if len(d.BadSeeds) == 0 {
		return seed
	}
	for {
		bad := false
		for _, b := range d.BadSeeds {
			if seed == b {
				bad = true
				break
			}
		}
		if !bad {
			return seed
		}
		seed++
	}
}
