package models

import "gorm.io/gorm"

// Deletes here are hard deletes. The schema has no archival state: removing
// an owner removes every dependent row, atomically, or nothing at all.

// DeleteApartmentsCascade removes the apartments and everything hanging off
// them: bookings (with their payments), reviews, photos, and the join rows
// tying them to amenities and wishlists.
func DeleteApartmentsCascade(tx *gorm.DB, apartmentIDs []uint) error {
	if len(apartmentIDs) == 0 {
		return nil
	}

	var bookingIDs []uint
	if err := tx.Model(&Booking{}).Where("apartment_id IN ?", apartmentIDs).Pluck("id", &bookingIDs).Error; err != nil {
		return err
	}

	if len(bookingIDs) > 0 {
		if err := tx.Unscoped().Where("booking_id IN ?", bookingIDs).Delete(&Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("id IN ?", bookingIDs).Delete(&Booking{}).Error; err != nil {
			return err
		}
	}

	if err := tx.Unscoped().Where("apartment_id IN ?", apartmentIDs).Delete(&Review{}).Error; err != nil {
		return err
	}
	if err := tx.Unscoped().Where("apartment_id IN ?", apartmentIDs).Delete(&Photo{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM apartment_amenities WHERE apartment_id IN ?", apartmentIDs).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM wish_list_apartments WHERE apartment_id IN ?", apartmentIDs).Error; err != nil {
		return err
	}

	return tx.Unscoped().Where("id IN ?", apartmentIDs).Delete(&Apartment{}).Error
}

// DeleteUserCascade removes a user together with their profile, verification
// records, owned apartments (transitively), bookings, reviews, payments and
// wishlists. Runs in a transaction so a failure leaves everything in place.
func DeleteUserCascade(db *gorm.DB, userID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var apartmentIDs []uint
		if err := tx.Model(&Apartment{}).Where("owner_id = ?", userID).Pluck("id", &apartmentIDs).Error; err != nil {
			return err
		}
		if err := DeleteApartmentsCascade(tx, apartmentIDs); err != nil {
			return err
		}

		var bookingIDs []uint
		if err := tx.Model(&Booking{}).Where("user_id = ?", userID).Pluck("id", &bookingIDs).Error; err != nil {
			return err
		}
		if len(bookingIDs) > 0 {
			if err := tx.Unscoped().Where("booking_id IN ?", bookingIDs).Delete(&Payment{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("id IN ?", bookingIDs).Delete(&Booking{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&Review{}).Error; err != nil {
			return err
		}

		var wishListIDs []uint
		if err := tx.Model(&WishList{}).Where("user_id = ?", userID).Pluck("id", &wishListIDs).Error; err != nil {
			return err
		}
		if len(wishListIDs) > 0 {
			if err := tx.Exec("DELETE FROM wish_list_apartments WHERE wish_list_id IN ?", wishListIDs).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("id IN ?", wishListIDs).Delete(&WishList{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&UserProfile{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&EmailVerification{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&PhoneVerification{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&SocialIDVerification{}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&User{}, userID).Error
	})
}
