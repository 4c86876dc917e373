package services

import (
	"fmt"
)

// DefaultPetContextResolver implements PetContextResolver
type DefaultPetContextResolver struct {
	pets PetServiceDB
}

func NewPetContextResolver(pets PetServiceDB) PetContextResolver {
	return &DefaultPetContextResolver{pets: pets}
}

// DescribePet renders a one-sentence summary of the pet for the system
// prompt. A missing pet is not an error: the context is simply omitted.
func (r *DefaultPetContextResolver) DescribePet(petID string) string {
	if petID == "" {
		return ""
	}
	pet, err := r.pets.GetPetByID(petID)
	if err != nil {
		return ""
	}

	species := pet.PetType
	if pet.PetType == "other" && pet.CustomPetType != "" {
		species = pet.CustomPetType
	}

	desc := pet.Name + " is a"
	if pet.Gender != "" {
		desc += " " + pet.Gender
	}
	desc += " " + species
	if pet.Breed != "" {
		desc += " (" + pet.Breed + ")"
	}
	desc += ", born on " + pet.BirthDate
	if pet.Weight != nil {
		desc += fmt.Sprintf(", weighing %g lb", *pet.Weight)
	}
	desc += "."
	return desc
}
